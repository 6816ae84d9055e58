package http

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// buildSchema creates the GraphQL schema wired to the elevation service.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lng": &graphql.Field{Type: graphql.Float},
		},
	})

	resultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ElevationResult",
		Fields: graphql.Fields{
			"elevation": &graphql.Field{Type: graphql.Float},
			"location":  &graphql.Field{Type: geoPointType},
		},
	})

	datasetType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Dataset",
		Fields: graphql.Fields{
			"name":       &graphql.Field{Type: graphql.String},
			"tile_count": &graphql.Field{Type: graphql.Int},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"datasets": &graphql.Field{
				Type:        graphql.NewList(datasetType),
				Description: "List the configured elevation datasets",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					snap, err := deps.Snapshots.Snapshot(p.Context)
					if err != nil {
						return nil, err
					}
					names := make([]string, 0, len(snap.Datasets))
					for name := range snap.Datasets {
						names = append(names, name)
					}
					sort.Strings(names)
					out := make([]map[string]interface{}, 0, len(names))
					for _, name := range names {
						ds := snap.Datasets[name]
						out = append(out, map[string]interface{}{
							"name":       ds.Name,
							"tile_count": ds.TileCount,
						})
					}
					return out, nil
				},
			},
			"methods": &graphql.Field{
				Type:        graphql.NewList(graphql.String),
				Description: "Supported interpolation methods",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Elevation.Methods(), nil
				},
			},
			"elevation": &graphql.Field{
				Type:        graphql.NewList(resultType),
				Description: "Elevation at each location of a batch, in input order",
				Args: graphql.FieldConfigArgument{
					"dataset":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"locations":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"interpolation": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					dataset := p.Args["dataset"].(string)
					locations := p.Args["locations"].(string)
					interpolation := p.Args["interpolation"].(string)
					return deps.Elevation.Query(p.Context, dataset, locations, interpolation)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorEnvelope{
				Status: statusInvalidReq,
				Error:  "Invalid request body.",
			})
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.Context(),
		})

		return c.JSON(result)
	}
}
