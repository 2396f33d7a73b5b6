package cube

import (
	"fmt"

	"github.com/roach88/carecube/internal/config"
	"github.com/roach88/carecube/internal/rdf"
)

// Variant selects how much schema the build emits.
type Variant int

const (
	// VariantEnriched adds SDMX concept links, the measure's super-property and
	// Dublin Core dataset metadata.
	VariantEnriched Variant = iota

	// VariantMinimal emits only types, labels, ranges and the structure.
	VariantMinimal
)

func (v Variant) String() string {
	switch v {
	case VariantEnriched:
		return "enriched"
	case VariantMinimal:
		return "minimal"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Options configures a build.
type Options struct {
	Variant Variant

	// Metadata is attached to the dataset in the enriched variant.
	// Empty fields are omitted.
	Metadata config.Dataset

	// Blanks labels the structure's component nodes.
	// Nil means a fresh SequenceGenerator per build.
	Blanks rdf.BlankGenerator
}

func (o Options) blanks() rdf.BlankGenerator {
	if o.Blanks == nil {
		return rdf.NewSequenceGenerator("b")
	}
	return o.Blanks
}
