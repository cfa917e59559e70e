package connector

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/semtable/semtable/pkg/table"
)

// loadFromBigQuery runs a query through the BigQuery client API. The
// connection URL carries the project in the host position, with an
// optional credentials file as a query parameter:
// bigquery://my-project?credentials=/path/to/key.json
func loadFromBigQuery(ctx context.Context, u *url.URL, query string) (*table.Table, error) {
	project := u.Host
	if project == "" {
		project = u.Opaque
	}
	if project == "" {
		return nil, &ConnectionError{Source: "bigquery", Err: errors.New("project ID is missing from connection URL")}
	}

	var opts []option.ClientOption
	if credentials := u.Query().Get("credentials"); credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	client, err := bigquery.NewClient(ctx, project, opts...)
	if err != nil {
		return nil, &ConnectionError{Source: "bigquery", Err: fmt.Errorf("failed to create client: %v", err)}
	}
	defer client.Close()

	q := client.Query(query)
	job, err := q.Run(ctx)
	if err != nil {
		return nil, &LoadError{Source: "bigquery", Err: fmt.Errorf("failed to run query: %v", err)}
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return nil, &LoadError{Source: "bigquery", Err: fmt.Errorf("failed to wait for query: %v", err)}
	}
	if err := status.Err(); err != nil {
		return nil, &LoadError{Source: "bigquery", Err: fmt.Errorf("query failed: %v", err)}
	}

	it, err := job.Read(ctx)
	if err != nil {
		return nil, &LoadError{Source: "bigquery", Err: fmt.Errorf("failed to read results: %v", err)}
	}

	var rows [][]interface{}
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: "bigquery", Err: fmt.Errorf("failed to scan row: %v", err)}
		}

		values := make([]interface{}, len(row))
		for i, val := range row {
			values[i] = val
		}
		rows = append(rows, values)
	}

	// The iterator's schema is populated once the first page has been
	// fetched, which has happened by the time Next returns Done.
	columns := make([]string, len(it.Schema))
	for i, field := range it.Schema {
		columns[i] = field.Name
	}

	tbl := table.New(columns)
	for _, row := range rows {
		if err := tbl.Append(row); err != nil {
			return nil, &LoadError{Source: "bigquery", Err: fmt.Errorf("failed to append row: %v", err)}
		}
	}
	return tbl, nil
}
