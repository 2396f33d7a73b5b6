package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/carecube/internal/rdf"
)

// ErrGraphNotFound is returned by ReadGraph for a dataset that was never written.
var ErrGraphNotFound = errors.New("graph not found")

// GraphInfo summarizes one stored dataset.
type GraphInfo struct {
	Dataset     string `json:"dataset"`
	Triples     int    `json:"triples"`
	ContentHash string `json:"content_hash"`
	Seq         int64  `json:"seq"`
}

// ReadGraph returns the stored graph of dataset with triples in their
// original emission order.
func (s *Store) ReadGraph(ctx context.Context, dataset string) (*rdf.Graph, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT triple_count FROM graphs WHERE dataset = ?`, dataset,
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read graph %s: %w", dataset, ErrGraphNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", dataset, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT subject_kind, subject, predicate, object_kind, object, object_lang, object_datatype
		FROM triples
		WHERE dataset = ?
		ORDER BY seq ASC
	`, dataset)
	if err != nil {
		return nil, fmt.Errorf("query triples: %w", err)
	}
	defer rows.Close()

	g := rdf.NewGraph()
	for rows.Next() {
		t, err := scanTriple(rows)
		if err != nil {
			return nil, err
		}
		g.AddTriple(t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate triples: %w", err)
	}

	if g.Len() != count {
		return nil, fmt.Errorf("read graph %s: stored %d triples, header says %d", dataset, g.Len(), count)
	}
	return g, nil
}

func scanTriple(rows *sql.Rows) (rdf.Triple, error) {
	var (
		subjectKind, subject, predicate string
		objectKind, object, lang, dtype string
	)
	if err := rows.Scan(&subjectKind, &subject, &predicate, &objectKind, &object, &lang, &dtype); err != nil {
		return rdf.Triple{}, fmt.Errorf("scan triple: %w", err)
	}

	s, err := decodeTerm(subjectKind, subject, "", "")
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("scan triple subject: %w", err)
	}
	o, err := decodeTerm(objectKind, object, lang, dtype)
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("scan triple object: %w", err)
	}
	return rdf.Triple{Subject: s, Predicate: rdf.IRI(predicate), Object: o}, nil
}

// Graphs lists stored datasets in the order they were last written.
// Returns an empty slice (not nil) when the store is empty.
func (s *Store) Graphs(ctx context.Context) ([]GraphInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT dataset, triple_count, content_hash, written_seq
		FROM graphs
		ORDER BY written_seq ASC, dataset COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query graphs: %w", err)
	}
	defer rows.Close()

	infos := []GraphInfo{}
	for rows.Next() {
		var info GraphInfo
		if err := rows.Scan(&info.Dataset, &info.Triples, &info.ContentHash, &info.Seq); err != nil {
			return nil, fmt.Errorf("scan graph: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate graphs: %w", err)
	}
	return infos, nil
}
