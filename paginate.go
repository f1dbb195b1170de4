package gql

import (
	"context"
	"strings"

	"github.com/buger/jsonparser"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
)

// PageSize returns the per-request page size for a caller limit.
func PageSize(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// QueryAll walks a Connection page by page and returns the nodes of every edge in
// response order. path is the dot-separated location of the Connection inside data,
// e.g. "clients" or "client.properties". limit <= 0 fetches everything.
//
// A missing path segment ends the walk with whatever was collected so far, and so
// does a page that reports hasNextPage without an endCursor. Edges that are null or
// carry a null or non-object node still count, as empty Records in their position.
func (b *BaseClient) QueryAll(ctx context.Context, document string, variables Variables, path string, limit int) ([]Record, error) {
	pageSize := PageSize(limit)
	keys := splitPath(path)

	var (
		items  []Record
		cursor string
	)
	for page := 1; ; page++ {
		raw, err := b.queryRaw(ctx, document, withPage(variables, pageSize, cursor))
		if err != nil {
			return nil, err
		}
		pagesTotal.Inc()

		conn, ok := lookupConnection(raw, keys)
		if !ok {
			b.Logger.Debug(&logging.LogMessage{
				Message: "Connection not found in response, stopping",
				Pairs:   map[string]any{"path": path, "page": page},
			})
			return items, nil
		}

		nodes, err := connectionNodes(conn)
		if err != nil {
			return nil, newTransportError(0, err, "Can't decode %s page %d", path, page)
		}
		items = append(items, nodes...)
		if limit > 0 && len(items) >= limit {
			return items[:limit], nil
		}

		hasNext, _ := jsonparser.GetBoolean(conn, "pageInfo", "hasNextPage")
		next, _ := jsonparser.GetString(conn, "pageInfo", "endCursor")
		if !hasNext || next == "" {
			if hasNext {
				b.Logger.Warn(&logging.LogMessage{
					Message: "hasNextPage without endCursor, stopping",
					Pairs:   map[string]any{"path": path, "page": page},
				})
			}
			return items, nil
		}
		cursor = next
	}
}

func splitPath(path string) []string {
	var keys []string
	for _, k := range strings.Split(path, ".") {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func lookupConnection(raw []byte, keys []string) ([]byte, bool) {
	if isNullJSON(raw) {
		return nil, false
	}
	value, dataType, _, err := jsonparser.Get(raw, keys...)
	if err != nil || dataType != jsonparser.Object {
		return nil, false
	}
	return value, true
}

func connectionNodes(conn []byte) ([]Record, error) {
	edges, dataType, _, err := jsonparser.Get(conn, "edges")
	if err != nil || dataType != jsonparser.Array {
		return nil, nil
	}

	var (
		nodes  []Record
		decErr error
	)
	// every edge keeps its position; an edge without an object node yields an empty Record
	_, err = jsonparser.ArrayEach(edges, func(edge []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if decErr != nil {
			return
		}
		if dataType != jsonparser.Object {
			nodes = append(nodes, Record{})
			return
		}
		node, nodeType, _, err := jsonparser.Get(edge, "node")
		if err != nil || nodeType != jsonparser.Object {
			nodes = append(nodes, Record{})
			return
		}
		rec, err := decodeRecord(node)
		if err != nil {
			decErr = err
			return
		}
		nodes = append(nodes, rec)
	})
	if err != nil {
		return nil, err
	}
	return nodes, decErr
}
