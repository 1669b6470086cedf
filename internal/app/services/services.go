package services

import (
	"github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
)

// Services bundles the service layer for dependency injection into the
// controllers.
type Services struct {
	Search      *SearchService
	Selection   *SelectionService
	Aggregation *AggregationService
	Codec       *ShareCodec
	Session     *SessionService
	Export      *ExportService
}

// NewServices wires the service layer over an immutable dataset store.
// currentYear is the upper bound of the full year range and comes from
// configuration rather than the wall clock.
func NewServices(store *repositories.Store, currentYear int) *Services {
	search := NewSearchService(store)
	selection := NewSelectionService(store)
	aggregation := NewAggregationService(store, selection, currentYear)
	codec := NewShareCodec(store)
	session := NewSessionService(store, selection, aggregation, codec)
	export := NewExportService(aggregation)

	return &Services{
		Search:      search,
		Selection:   selection,
		Aggregation: aggregation,
		Codec:       codec,
		Session:     session,
		Export:      export,
	}
}
