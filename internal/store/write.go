package store

import (
	"context"
	"fmt"

	"github.com/roach88/carecube/internal/rdf"
)

// WriteGraph stores g under dataset, replacing any earlier snapshot of the
// same dataset. The delete and the inserts run in one transaction.
func (s *Store) WriteGraph(ctx context.Context, dataset string, g *rdf.Graph) error {
	if dataset == "" {
		return fmt.Errorf("write graph: empty dataset IRI")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write graph: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(written_seq), 0) + 1 FROM graphs`,
	).Scan(&seq); err != nil {
		return fmt.Errorf("write graph: next seq: %w", err)
	}

	// Triples go with their graph row via ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, `DELETE FROM graphs WHERE dataset = ?`, dataset); err != nil {
		return fmt.Errorf("write graph: delete previous: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO graphs (dataset, triple_count, content_hash, written_seq)
		VALUES (?, ?, ?, ?)
	`, dataset, g.Len(), rdf.Hash(g), seq); err != nil {
		return fmt.Errorf("write graph: insert graph: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO triples
		(dataset, seq, subject_kind, subject, predicate, object_kind, object, object_lang, object_datatype)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write graph: prepare: %w", err)
	}
	defer stmt.Close()

	for i, t := range g.Triples() {
		subjectKind, err := encodeKind(t.Subject.Kind)
		if err != nil {
			return fmt.Errorf("write graph: triple %d subject: %w", i, err)
		}
		objectKind, err := encodeKind(t.Object.Kind)
		if err != nil {
			return fmt.Errorf("write graph: triple %d object: %w", i, err)
		}

		if _, err := stmt.ExecContext(ctx,
			dataset,
			i,
			subjectKind,
			t.Subject.Value,
			t.Predicate.Value,
			objectKind,
			t.Object.Value,
			t.Object.Lang,
			t.Object.Datatype,
		); err != nil {
			return fmt.Errorf("write graph: triple %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write graph: commit: %w", err)
	}
	return nil
}
