package openapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type composerBody struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
}

type invoiceBody struct {
	Subtotal  float64 `json:"subtotal"`
	LineItems []struct {
		Name string `json:"name" validate:"required"`
	} `json:"lineItems"`
	Secret string `json:"-"`
	hidden string
}

func newTestDocument(t *testing.T) *Document {
	t.Helper()

	doc := New("WEB 420 RESTful APIs", "1.0.0")
	require.NoError(t, doc.AddOperation(http.MethodGet, "/api/composers/{id}", Operation{
		Tags:        []string{"Composers"},
		OperationID: "findComposerById",
		Responses: map[string]string{
			"200": "Composer document",
			"404": "No composer can be found",
		},
	}))
	require.NoError(t, doc.AddOperation(http.MethodPost, "/api/composers", Operation{
		Tags:        []string{"Composers"},
		OperationID: "createComposer",
		Body:        composerBody{},
		Responses:   map[string]string{"200": "Composer added"},
	}))
	require.NoError(t, doc.AddOperation(http.MethodPost, "/api/teams/{id}/players", Operation{
		Tags:        []string{"Teams"},
		OperationID: "assignPlayerToTeam",
	}))
	return doc
}

// schemaJSON renders a schema so assertions do not depend on the Go
// representation of schema types.
func schemaJSON(t *testing.T, ref *openapi3.SchemaRef) map[string]interface{} {
	t.Helper()

	raw, err := json.Marshal(ref)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAddOperation(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)
	require.NoError(t, doc.Validate(context.Background()))

	get := doc.Paths.Value("/api/composers/{id}").Get
	require.NotNil(t, get)
	require.Len(t, get.Parameters, 1)
	param := get.Parameters[0].Value
	assert.Equal(t, "id", param.Name)
	assert.Equal(t, openapi3.ParameterInPath, param.In)
	assert.True(t, param.Required)
	assert.NotNil(t, get.Responses.Value("404"))

	post := doc.Paths.Value("/api/composers").Post
	require.NotNil(t, post)
	assert.Empty(t, post.Parameters)
	require.NotNil(t, post.RequestBody)
	assert.True(t, post.RequestBody.Value.Required)

	players := doc.Paths.Value("/api/teams/{id}/players").Post
	require.NotNil(t, players)
	assert.Equal(t, 1, players.Responses.Len(), "a default response is always declared")
	assert.NotNil(t, players.Responses.Value("default"))

	names := make([]string, 0, len(doc.Tags))
	for _, tag := range doc.Tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"Composers", "Teams"}, names)
}

func TestAddOperationRejectsDuplicatesAndUnknownMethods(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)

	err := doc.AddOperation(http.MethodGet, "/api/composers/{id}", Operation{OperationID: "again"})
	assert.Error(t, err)

	err = doc.AddOperation(http.MethodPatch, "/api/composers/{id}", Operation{OperationID: "patch"})
	assert.Error(t, err)
}

func TestAddOperationStripsRoutePatterns(t *testing.T) {
	t.Parallel()

	doc := New("t", "1")
	require.NoError(t, doc.AddOperation(http.MethodGet, "/items/{id:[0-9a-f]+}", Operation{OperationID: "getItem"}))

	item := doc.Paths.Value("/items/{id}")
	require.NotNil(t, item)
	assert.Equal(t, "id", item.Get.Parameters[0].Value.Name)
	assert.NoError(t, doc.Validate(context.Background()))
}

func TestSchemaOf(t *testing.T) {
	t.Parallel()

	ref, err := SchemaOf(composerBody{})
	require.NoError(t, err)
	assert.Equal(t, []string{"firstName", "lastName"}, ref.Value.Required)

	s := schemaJSON(t, ref)
	assert.Equal(t, "object", s["type"])
	props := s["properties"].(map[string]interface{})
	assert.Equal(t, "string", props["firstName"].(map[string]interface{})["type"])

	ref, err = SchemaOf(&invoiceBody{})
	require.NoError(t, err)
	assert.Empty(t, ref.Value.Required)

	inv := schemaJSON(t, ref)
	props = inv["properties"].(map[string]interface{})
	assert.Equal(t, "number", props["subtotal"].(map[string]interface{})["type"])
	lineItems := props["lineItems"].(map[string]interface{})
	assert.Equal(t, "array", lineItems["type"])
	items := lineItems["items"].(map[string]interface{})
	assert.Contains(t, items["properties"], "name")
	assert.Equal(t, []interface{}{"name"}, items["required"])
	assert.NotContains(t, props, "Secret")
	assert.NotContains(t, props, "hidden")
}

func TestRenderJSONAndYAML(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)

	raw, err := doc.JSON()
	require.NoError(t, err)

	var fromJSON map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fromJSON))
	assert.Equal(t, "3.0.0", fromJSON["openapi"])
	assert.Equal(t, "WEB 420 RESTful APIs", fromJSON["info"].(map[string]interface{})["title"])

	raw, err = doc.YAML()
	require.NoError(t, err)

	loaded, err := openapi3.NewLoader().LoadFromData(raw)
	require.NoError(t, err)
	require.NoError(t, loaded.Validate(context.Background()))
	assert.Equal(t, doc.Info.Title, loaded.Info.Title)

	post := loaded.Paths.Value("/api/composers").Post
	require.NotNil(t, post)
	assert.Equal(t, "createComposer", post.OperationID)
	assert.Equal(t, []string{"firstName", "lastName"},
		post.RequestBody.Value.Content.Get("application/json").Schema.Value.Required)
}

func TestHandlers(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)

	tests := []struct {
		name        string
		handler     http.Handler
		contentType string
	}{
		{name: "json", handler: Handler(doc), contentType: "application/json"},
		{name: "yaml", handler: YAMLHandler(doc), contentType: "application/yaml"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "findComposerById")
		})
	}
}
