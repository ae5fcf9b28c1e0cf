package shiftgen

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/schema"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// introspectQuery is the filter surface of the introspection endpoint,
// decoded from URL query parameters.
type introspectQuery struct {
	Schema string `schema:"schema"`
	Name   string `schema:"name"`
	Rep    string `schema:"rep"`
}

// typeInfo is the wire form of a registered descriptor.
type typeInfo struct {
	Key         string         `json:"key"`
	Schema      string         `json:"schema"`
	Name        string         `json:"name"`
	Rep         Representation `json:"rep"`
	AutoMigrate bool           `json:"autoMigrate"`
	Fields      []fieldInfo    `json:"fields"`
}

type fieldInfo struct {
	ID           int16  `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Requiredness string `json:"requiredness"`
}

type registryInfo struct {
	AutoMigrated bool       `json:"autoMigrated"`
	Types        []typeInfo `json:"types"`
}

// Introspector serves the registry contents over HTTP for debugging.
// GET / lists registered descriptors as a JSON envelope; the query
// parameters schema, name and rep filter the listing.
//
// Example:
//
//	http.ListenAndServe("localhost:9090", shiftgen.NewIntrospector(shiftgen.DefaultRegistry()))
type Introspector struct {
	registry *Registry
	logger   *slog.Logger
}

// NewIntrospector creates an Introspector over the given registry.
func NewIntrospector(r *Registry) *Introspector {
	return &Introspector{registry: r}
}

// WithLogger sets a custom logger. If not set, slog.Default() will be used.
func (i *Introspector) WithLogger(logger *slog.Logger) *Introspector {
	i.logger = logger
	return i
}

// ServeHTTP implements http.Handler.
func (i *Introspector) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			logger := i.logger
			if logger == nil {
				logger = slog.Default()
			}
			logger.Error("PANIC recovered",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))
			writeError(w, NewError(CodeInternal, "internal server error"), i.logger)
		}
	}()

	if req.Method != http.MethodGet {
		writeError(w, Errorf(CodeMethodNotAllowed, "method %s not allowed, expected GET", req.Method), i.logger)
		return
	}

	var q introspectQuery
	if err := queryDecoder.Decode(&q, req.URL.Query()); err != nil {
		writeError(w, Errorf(CodeInvalidArgument, "invalid query: %v", err), i.logger)
		return
	}

	if q.Rep != "" && q.Rep != string(RepLegacy) && q.Rep != string(RepMigrated) {
		writeError(w, Errorf(CodeInvalidArgument, "rep must be %q or %q", RepLegacy, RepMigrated), i.logger)
		return
	}

	info := registryInfo{
		AutoMigrated: i.registry.IsAutoMigrated(),
		Types:        []typeInfo{},
	}
	for _, t := range i.registry.Types() {
		if q.Schema != "" && t.Schema != q.Schema {
			continue
		}
		if q.Name != "" && t.Name != q.Name {
			continue
		}
		if q.Rep != "" && string(t.Rep) != q.Rep {
			continue
		}
		info.Types = append(info.Types, describeType(t))
	}

	// A name filter that matches nothing is a lookup miss, not an
	// empty listing.
	if q.Name != "" && len(info.Types) == 0 {
		writeError(w, Errorf(CodeNotFound, "type %q: %s", q.Name, ErrUnknownType), i.logger)
		return
	}

	writeResult(w, info, i.logger)
}

func describeType(t *Type) typeInfo {
	fields := make([]fieldInfo, 0, len(t.Fields))
	for _, f := range t.Fields {
		fields = append(fields, fieldInfo{
			ID:           f.ID,
			Name:         f.Name,
			Type:         f.Type,
			Requiredness: f.Requiredness.String(),
		})
	}
	return typeInfo{
		Key:         t.Key(),
		Schema:      t.Schema,
		Name:        t.Name,
		Rep:         t.Rep,
		AutoMigrate: t.AutoMigrate,
		Fields:      fields,
	}
}
