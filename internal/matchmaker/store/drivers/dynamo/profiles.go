package dynamo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aussiebroadwan/cofound/internal/matchmaker/domain"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type profilesRepo struct {
	api   API
	table string
	opts  store.Options
}

func (r *profilesRepo) Get(ctx context.Context, id string) (domain.Profile, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Profile{}, mapErr(err)
	}
	if out.Item == nil {
		return domain.Profile{}, store.ErrNotFound
	}
	return decodeProfile(out.Item)
}

// Put upserts every attribute except created_at, which keeps its first value.
func (r *profilesRepo) Put(ctx context.Context, p domain.Profile) error {
	av, err := attributevalue.MarshalMap(toProfileRecord(p))
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	names := map[string]string{"#created_at": "created_at"}
	values := map[string]types.AttributeValue{":created_at": av["created_at"]}
	sets := []string{"#created_at = if_not_exists(#created_at, :created_at)"}
	var removes []string

	for _, field := range []string{
		"name", "location", "email", "phone", "linkedin", "role", "experience",
		"skills", "stage", "commitment", "industries", "looking", "bio", "idea",
	} {
		names["#"+field] = field
		v, ok := av[field]
		if !ok {
			// omitempty dropped it: clear any previous value.
			removes = append(removes, "#"+field)
			continue
		}
		values[":"+field] = v
		sets = append(sets, fmt.Sprintf("#%s = :%s", field, field))
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}

	_, err = r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       idKey(p.ID),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return mapErr(err)
}

func (r *profilesRepo) List(ctx context.Context) ([]domain.Profile, error) {
	items, err := scanItems(ctx, r.api, &dynamodb.ScanInput{TableName: aws.String(r.table)}, 0)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]domain.Profile, 0, len(items))
	for _, it := range items {
		p, err := decodeProfile(it)
		if err != nil {
			r.opts.Quarantine(ctx, "profiles", itemID(it), err)
			continue
		}
		out = append(out, p)
	}

	slices.SortFunc(out, func(a, b domain.Profile) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *profilesRepo) Delete(ctx context.Context, id string) error {
	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if isConditionFailed(err) {
		return store.ErrNotFound
	}
	return mapErr(err)
}

func (r *profilesRepo) Count(ctx context.Context) (int, error) {
	n, err := scanCount(ctx, r.api, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	return n, mapErr(err)
}

func decodeProfile(it item) (domain.Profile, error) {
	var rec profileRecord
	if err := attributevalue.UnmarshalMap(it, &rec); err != nil {
		return domain.Profile{}, malformed(err)
	}
	return rec.toDomain()
}
