package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

const createOrderPath = "/api/v1/orders"

var registerDocOnce sync.Once

// API is the parsed HTTP contract. It validates request bodies and serves the
// document to Swagger UI.
type API struct {
	createOrderSchema *openapi3.Schema
	docJSON           string
}

func LoadAPI(ctx context.Context) (*API, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	item := doc.Paths.Value(createOrderPath)
	if item == nil || item.Post == nil || item.Post.RequestBody == nil || item.Post.RequestBody.Value == nil {
		return nil, errors.New("openapi document has no create order operation")
	}
	media := item.Post.RequestBody.Value.Content.Get(echo.MIMEApplicationJSON)
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, errors.New("openapi document has no create order schema")
	}

	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi document: %w", err)
	}

	return &API{
		createOrderSchema: media.Schema.Value,
		docJSON:           string(docJSON),
	}, nil
}

// ValidateCreateOrder checks a decoded JSON body against the request schema.
func (a *API) ValidateCreateOrder(body any) error {
	return a.createOrderSchema.VisitJSON(body)
}

// ReadDoc implements swag.Swagger.
func (a *API) ReadDoc() string {
	return a.docJSON
}

// registerDoc makes the document available to echo-swagger. swag keeps a
// process wide registry, so only the first API is registered.
func (a *API) registerDoc() {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, a)
	})
}
