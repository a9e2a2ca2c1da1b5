package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// queryItems follows LastEvaluatedKey until limit items are collected;
// limit <= 0 reads every page.
func queryItems(ctx context.Context, api API, in *dynamodb.QueryInput, limit int) ([]item, error) {
	var out []item
	pages := dynamodb.NewQueryPaginator(api, in)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}
	}
	return out, nil
}

func scanItems(ctx context.Context, api API, in *dynamodb.ScanInput, limit int) ([]item, error) {
	var out []item
	pages := dynamodb.NewScanPaginator(api, in)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
		if limit > 0 && len(out) >= limit {
			return out[:limit], nil
		}
	}
	return out, nil
}

func queryCount(ctx context.Context, api API, in *dynamodb.QueryInput) (int, error) {
	in.Select = types.SelectCount
	n := 0
	pages := dynamodb.NewQueryPaginator(api, in)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		n += int(page.Count)
	}
	return n, nil
}

func scanCount(ctx context.Context, api API, in *dynamodb.ScanInput) (int, error) {
	in.Select = types.SelectCount
	n := 0
	pages := dynamodb.NewScanPaginator(api, in)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		n += int(page.Count)
	}
	return n, nil
}
