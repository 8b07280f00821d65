package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetURLFields returns the fields of filter whose "form" parameter is
// present in the query of url.
//
// The first slice holds the names that can be passed to a gorm Where
// directly. It is []any since that is what Where accepts. The second
// holds every set field, including the ones tagged filterField:"false"
// (e.g. Month on the expense filter) which the handler applies itself.
// Knowing which fields are set allows filtering on zero values like an
// empty description.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	query := url.Query()
	typ := reflect.Indirect(reflect.ValueOf(filter)).Type()
	for _, field := range reflect.VisibleFields(typ) {
		if !query.Has(field.Tag.Get("form")) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

// GetBodyFields returns the names of the fields of resource that are
// present in the JSON request body.
//
// The body is restored afterwards, so gin's c.*Bind methods can still
// read it. Call this before binding.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var bodyFields []any
	typ := reflect.Indirect(reflect.ValueOf(resource)).Type()
	for _, field := range reflect.VisibleFields(typ) {
		if _, ok := present[field.Tag.Get("json")]; ok {
			bodyFields = append(bodyFields, field.Name)
		}
	}

	return bodyFields, nil
}
