package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formabase/formabase-backend/internal/config"
	"github.com/formabase/formabase-backend/internal/transport/middleware"
)

// RouterDeps bundles the handlers the router mounts.
type RouterDeps struct {
	Health   *HealthHandler
	Schema   *SchemaHandler
	Category *CategoryHandler
	Edges    *EdgeHandler
	Types    *TypesHandler
}

// NewRouter assembles the full HTTP surface: health probes unwrapped, the
// API under the shared middleware chain.
func NewRouter(deps RouterDeps, corsCfg config.CORSConfig, mw ...middleware.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	chain := middleware.Chain(append([]middleware.Middleware{middleware.CORS(corsCfg)}, mw...)...)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(chain)

		api.Get("/field-types", deps.Types.List)

		api.Route("/applications/{applicationID}/directories", func(d chi.Router) {
			d.Post("/", deps.Schema.CreateDirectory)
			d.Get("/", deps.Schema.ListDirectories)
			d.Get("/{directoryID}", deps.Schema.GetDirectory)
			d.Patch("/{directoryID}", deps.Schema.UpdateDirectory)
			d.Delete("/{directoryID}", deps.Schema.DeleteDirectory)
		})

		api.Route("/directories/{directoryID}", func(d chi.Router) {
			d.Post("/fields", deps.Schema.CreateField)
			d.Get("/fields", deps.Schema.ListFields)
			d.Put("/fields/order", deps.Schema.ReorderFields)

			d.Post("/field-categories", deps.Category.CreateFieldCategory)
			d.Get("/field-categories", deps.Category.ListFieldCategories)
		})

		api.Route("/fields/{fieldID}", func(f chi.Router) {
			f.Get("/", deps.Schema.GetField)
			f.Patch("/", deps.Schema.UpdateField)
			f.Delete("/", deps.Schema.DeleteField)
		})

		api.Route("/field-categories/{categoryID}", func(c chi.Router) {
			c.Get("/", deps.Category.GetFieldCategory)
			c.Patch("/", deps.Category.UpdateFieldCategory)
			c.Delete("/", deps.Category.DeleteFieldCategory)
		})

		api.Route("/trees/{treeID}/nodes", func(n chi.Router) {
			n.Post("/", deps.Category.AddNode)
			n.Get("/", deps.Category.ListNodes)
			n.Get("/{nodeID}", deps.Category.GetNode)
			n.Patch("/{nodeID}", deps.Category.RenameNode)
			n.Put("/{nodeID}/parent", deps.Category.MoveNode)
			n.Delete("/{nodeID}", deps.Category.DeleteNode)
		})

		api.Route("/edges", func(e chi.Router) {
			e.Post("/", deps.Edges.CreateEdge)
			e.Get("/", deps.Edges.QueryEdges)
			e.Get("/{edgeID}", deps.Edges.GetEdge)
			e.Patch("/{edgeID}", deps.Edges.UpdateEdge)
			e.Delete("/{edgeID}", deps.Edges.DeleteEdge)
		})
	})

	return r
}
