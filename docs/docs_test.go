package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routerAnnotation = regexp.MustCompile(`(?m)^// @Router\s+(\S+)\s+\[(\w+)\]`)

func annotatedRoutes(t *testing.T) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("..", "handler", "*.go"))
	require.NoError(t, err)

	var routes []string
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		src, err := os.ReadFile(file)
		require.NoError(t, err)
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			routes = append(routes, strings.ToUpper(m[2])+" "+m[1])
		}
	}
	sort.Strings(routes)
	return routes
}

func documentedRoutes(t *testing.T) []string {
	t.Helper()
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	var routes []string
	for path, ops := range parsed.Paths {
		for method := range ops {
			routes = append(routes, strings.ToUpper(method)+" "+path)
		}
	}
	sort.Strings(routes)
	return routes
}

func TestDoc_MatchesHandlerAnnotations(t *testing.T) {
	annotated := annotatedRoutes(t)
	require.NotEmpty(t, annotated)

	assert.Equal(t, annotated, documentedRoutes(t))
}

func TestDoc_DeclaresBearerAuth(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	assert.Contains(t, doc, `"BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}`)
	assert.Contains(t, doc, `"title": "Food Storefront API"`)
}
