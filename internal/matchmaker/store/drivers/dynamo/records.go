package dynamo

import (
	"strconv"
	"time"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Timestamps are stored as unix milliseconds so the range keys sort.

type profileRecord struct {
	ID         string   `dynamodbav:"id"`
	Name       string   `dynamodbav:"name"`
	Location   string   `dynamodbav:"location"`
	Email      string   `dynamodbav:"email"`
	Phone      string   `dynamodbav:"phone,omitempty"`
	LinkedIn   string   `dynamodbav:"linkedin,omitempty"`
	Role       string   `dynamodbav:"role"`
	Experience string   `dynamodbav:"experience,omitempty"`
	Skills     []string `dynamodbav:"skills"`
	Stage      string   `dynamodbav:"stage,omitempty"`
	Commitment string   `dynamodbav:"commitment"`
	Industries []string `dynamodbav:"industries"`
	Looking    string   `dynamodbav:"looking"`
	Bio        string   `dynamodbav:"bio"`
	Idea       string   `dynamodbav:"idea,omitempty"`
	CreatedAt  int64    `dynamodbav:"created_at"`
}

func toProfileRecord(p domain.Profile) profileRecord {
	return profileRecord{
		ID:         p.ID,
		Name:       p.Name,
		Location:   p.Location,
		Email:      p.Email,
		Phone:      p.Phone,
		LinkedIn:   p.LinkedIn,
		Role:       string(p.Role),
		Experience: string(p.Experience),
		Skills:     nonNil(p.Skills),
		Stage:      string(p.Stage),
		Commitment: string(p.Commitment),
		Industries: nonNil(p.Industries),
		Looking:    string(p.Looking),
		Bio:        p.Bio,
		Idea:       p.Idea,
		CreatedAt:  p.CreatedAt.UnixMilli(),
	}
}

func (r profileRecord) toDomain() (domain.Profile, error) {
	p := domain.Profile{
		ID:         r.ID,
		Name:       r.Name,
		Location:   r.Location,
		Email:      r.Email,
		Phone:      r.Phone,
		LinkedIn:   r.LinkedIn,
		Role:       domain.Role(r.Role),
		Experience: domain.Experience(r.Experience),
		Skills:     nonNil(r.Skills),
		Stage:      domain.Stage(r.Stage),
		Commitment: domain.Commitment(r.Commitment),
		Industries: nonNil(r.Industries),
		Looking:    domain.LookingFor(r.Looking),
		Bio:        r.Bio,
		Idea:       r.Idea,
		CreatedAt:  fromMillis(r.CreatedAt),
	}
	if err := p.Validate(); err != nil {
		return domain.Profile{}, malformed(err)
	}
	return p, nil
}

type participantRecord struct {
	Name  string `dynamodbav:"name"`
	Role  string `dynamodbav:"role"`
	Email string `dynamodbav:"email"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type matchRecord struct {
	ID        string            `dynamodbav:"id"`
	P1ID      string            `dynamodbav:"p1_id"`
	P2ID      string            `dynamodbav:"p2_id"`
	P1        participantRecord `dynamodbav:"p1"`
	P2        participantRecord `dynamodbav:"p2"`
	Notes     string            `dynamodbav:"notes,omitempty"`
	Status    string            `dynamodbav:"status"`
	CreatedAt int64             `dynamodbav:"created_at"`
	UpdatedAt int64             `dynamodbav:"updated_at"`
}

func toParticipantRecord(p domain.Participant) participantRecord {
	return participantRecord{Name: p.Name, Role: string(p.Role), Email: p.Email, Phone: p.Phone}
}

func (r participantRecord) toDomain() domain.Participant {
	return domain.Participant{Name: r.Name, Role: domain.Role(r.Role), Email: r.Email, Phone: r.Phone}
}

func toMatchRecord(m domain.Match) matchRecord {
	return matchRecord{
		ID:        m.ID,
		P1ID:      m.P1ID,
		P2ID:      m.P2ID,
		P1:        toParticipantRecord(m.P1),
		P2:        toParticipantRecord(m.P2),
		Notes:     m.Notes,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.UnixMilli(),
		UpdatedAt: m.UpdatedAt.UnixMilli(),
	}
}

func (r matchRecord) toDomain() (domain.Match, error) {
	m := domain.Match{
		ID:        r.ID,
		P1ID:      r.P1ID,
		P2ID:      r.P2ID,
		P1:        r.P1.toDomain(),
		P2:        r.P2.toDomain(),
		Notes:     r.Notes,
		Status:    domain.MatchStatus(r.Status),
		CreatedAt: fromMillis(r.CreatedAt),
		UpdatedAt: fromMillis(r.UpdatedAt),
	}
	if err := m.Validate(); err != nil {
		return domain.Match{}, malformed(err)
	}
	return m, nil
}

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

func stringAttr(s string) types.AttributeValue { return &types.AttributeValueMemberS{Value: s} }

func millisAttr(t time.Time) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(t.UnixMilli(), 10)}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": stringAttr(id)}
}

// itemID pulls the id out of a raw item so a record that fails to decode
// can still be reported.
func itemID(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
