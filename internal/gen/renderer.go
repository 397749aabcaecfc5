package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	"github.com/osakanaya/beginningee6-chapter03/internal/naming"
)

// Import paths of the runtime packages generated code uses.
const (
	OrmImport   = "github.com/osakanaya/beginningee6-chapter03/orm"
	ScopeImport = "github.com/osakanaya/beginningee6-chapter03/scope"
)

// RenderOption controls the output of RenderFile.
type RenderOption struct {
	DestPkg string // output package name (empty = same as source)
}

// Render generates the Go source code for a single StructInfo.
// The returned bytes are formatted by gofmt.
func Render(info *StructInfo) ([]byte, error) {
	return RenderFile([]*StructInfo{info}, RenderOption{})
}

// RenderFile generates a single Go source file for all given StructInfos.
// Relation targets are resolved among infos. The returned bytes are
// formatted by gofmt.
func RenderFile(infos []*StructInfo, opt RenderOption) ([]byte, error) {
	if len(infos) == 0 {
		return nil, errors.New("no structs to render")
	}

	pkg := opt.DestPkg
	if pkg == "" {
		pkg = infos[0].Package
	}

	structs := make([]templateData, 0, len(infos))
	fileHasTime := false
	fileHasRelations := false
	for _, info := range infos {
		data, err := buildTemplateData(info, infos)
		if err != nil {
			return nil, err
		}
		if len(data.CreatedAtFields) > 0 {
			fileHasTime = true
		}
		if len(data.Relations) > 0 {
			fileHasRelations = true
		}
		structs = append(structs, data)
	}

	fileData := fileTemplateData{
		Package:      pkg,
		OrmImport:    OrmImport,
		ScopeImport:  ScopeImport,
		HasTime:      fileHasTime,
		HasRelations: fileHasRelations,
		Structs:      structs,
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, fileData); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return src, nil
}

func buildTemplateData(info *StructInfo, infos []*StructInfo) (templateData, error) {
	pks := info.PrimaryKeyFields()
	if len(pks) == 0 {
		return templateData{}, fmt.Errorf("no primary key defined for %s", info.Name)
	}

	data := templateData{
		TypeName:    info.Name,
		TableName:   info.TableName,
		FactoryName: naming.FactoryName(info.Name),
		Fields:      info.Fields,
		ScanFunc:    unexportedName("scan" + info.Name),
		ColValFunc:  unexportedName(info.Name + "ColumnValuePairs"),
		SetPKFunc:   unexportedName("set" + info.Name + "PK"),
		ColumnsVar:  unexportedName(info.Name + "Columns"),
	}
	for _, pk := range pks {
		data.PKColumns = append(data.PKColumns, pk.Column)
	}
	if len(pks) == 1 && isIntType(pks[0].GoType) {
		pk := pks[0]
		data.AutoPK = &pk
	}

	for _, f := range info.Fields {
		switch {
		case f.Lazy:
			data.LazyColumns = append(data.LazyColumns, f.Column)
		default:
			data.EagerColumns = append(data.EagerColumns, f.Column)
		}
		if f.Immutable {
			data.ImmutableColumns = append(data.ImmutableColumns, f.Column)
		}
		if f.CreatedAt {
			setter, ok := createdAtSetter(f)
			if !ok {
				return templateData{}, fmt.Errorf("%s.%s: createdAt needs a time type, got %s", info.Name, f.Name, f.GoType)
			}
			data.CreatedAtFields = append(data.CreatedAtFields, createdAtField{Name: f.Name, GoType: f.GoType, Setter: setter})
		}
	}
	if len(data.CreatedAtFields) > 0 {
		data.SetCreatedAtFunc = unexportedName("set" + info.Name + "CreatedAt")
	}

	rels, err := ResolveRelations(info, infos)
	if err != nil {
		return templateData{}, err
	}
	for _, rel := range rels {
		rd, err := buildRelationData(info, rel)
		if err != nil {
			return templateData{}, err
		}
		data.Relations = append(data.Relations, rd)
	}
	return data, nil
}

func buildRelationData(info *StructInfo, rel ResolvedRelation) (relationTemplateData, error) {
	targetPK, _ := rel.Target.PrimaryKeyField()
	rd := relationTemplateData{
		Shape:          rel.Shape,
		FieldName:      rel.FieldName,
		PreloaderName:  unexportedName("preload" + info.Name + rel.FieldName),
		ParentType:     info.Name,
		TargetFactory:  naming.FactoryName(rel.Target.Name),
		TargetPKField:  targetPK.Name,
		TargetPKColumn: targetPK.Column,
		TargetKeyType:  targetPK.GoType,
		IsSlice:        rel.IsSlice,
		ElemType:       rel.TargetType,
		Elem:           "related[i]",
		JoinTable:      rel.JoinTable,
		SourceColumn:   rel.SourceColumn,
		TargetColumn:   rel.TargetColumn,
	}
	if rel.IsPointer {
		rd.ElemType = "*" + rel.TargetType
		rd.Elem = "&related[i]"
	}
	if rel.FKField != nil {
		rd.FKField = rel.FKField.Name
		rd.FKColumn = rel.FKField.Column
		rd.FKIsPointer = strings.HasPrefix(rel.FKField.GoType, "*")
	}
	if rel.Shape != ownerFK {
		pk, err := info.PrimaryKeyField()
		if err != nil {
			return rd, fmt.Errorf("%s.%s: %w", info.Name, rel.FieldName, err)
		}
		rd.ParentPKField = pk.Name
		rd.ParentKeyType = pk.GoType
	}
	return rd, nil
}

// createdAtSetter returns the statement assigning `now` to the field.
func createdAtSetter(f FieldInfo) (string, bool) {
	switch f.GoType {
	case "time.Time":
		return "now", true
	case "*time.Time":
		return "&now", true
	case "orm.Timestamp":
		return "orm.NewTimestamp(now)", true
	case "orm.Date":
		return "orm.Date{Time: now}", true
	default:
		return "", false
	}
}

type fileTemplateData struct {
	Package      string
	OrmImport    string
	ScopeImport  string
	HasTime      bool
	HasRelations bool
	Structs      []templateData
}

type templateData struct {
	TypeName         string
	TableName        string
	FactoryName      string
	Fields           []FieldInfo
	PKColumns        []string
	EagerColumns     []string
	LazyColumns      []string
	ImmutableColumns []string
	AutoPK           *FieldInfo
	ScanFunc         string
	ColValFunc       string
	SetPKFunc        string
	ColumnsVar       string
	SetCreatedAtFunc string
	CreatedAtFields  []createdAtField
	Relations        []relationTemplateData
}

type createdAtField struct {
	Name   string // "CreationDate"
	GoType string // "orm.Timestamp"
	Setter string // "orm.NewTimestamp(now)"
}

type relationTemplateData struct {
	Shape          string // ownerFK, inverseFK or joinPairs
	FieldName      string // "Address"
	PreloaderName  string // "preloadCustomerAddress"
	ParentType     string // "Customer"
	ParentPKField  string // "ID", unset for ownerFK
	ParentKeyType  string // "int64", unset for ownerFK
	TargetFactory  string // "Addresses"
	TargetPKField  string
	TargetPKColumn string
	TargetKeyType  string
	IsSlice        bool
	ElemType       string // "*Address" or "Address"
	Elem           string // "&related[i]" or "related[i]"
	FKField        string // "AddressID"
	FKColumn       string // "add_fk"
	FKIsPointer    bool
	JoinTable      string
	SourceColumn   string
	TargetColumn   string
}

// FKDeref returns the operator reading the join column value.
func (r relationTemplateData) FKDeref() string {
	if r.FKIsPointer {
		return "*"
	}
	return ""
}

// NonPKFields returns every field except the generated key.
func (d templateData) NonPKFields() []FieldInfo {
	var fields []FieldInfo
	for _, f := range d.Fields {
		if d.AutoPK == nil || f.Column != d.AutoPK.Column {
			fields = append(fields, f)
		}
	}
	return fields
}

// HasRegistrations reports whether the factory needs a local variable.
func (d templateData) HasRegistrations() bool {
	return len(d.LazyColumns) > 0 || len(d.ImmutableColumns) > 0 ||
		len(d.CreatedAtFields) > 0 || len(d.Relations) > 0
}

// SetPKConversion returns the expression assigning an int64 id to the key.
func (d templateData) SetPKConversion() string {
	if d.AutoPK.GoType == "int64" {
		return "id"
	}
	return d.AutoPK.GoType + "(id)"
}

var funcMap = template.FuncMap{
	"join": strings.Join,
	"quote": func(s string) string {
		return `"` + s + `"`
	},
	"quoteList": func(ss []string) string {
		q := make([]string, len(ss))
		for i, s := range ss {
			q[i] = `"` + s + `"`
		}
		return strings.Join(q, ", ")
	},
	"hasPrefix": strings.HasPrefix,
}

var fileTmpl = template.Must(template.New("gen").Funcs(funcMap).Parse(fileTemplate))

const fileTemplate = `// Code generated by chapter03 gen; DO NOT EDIT.
package {{.Package}}

import (
	{{- if .HasRelations}}
	"context"
	{{- end}}
	"database/sql"
	{{- if .HasTime}}
	"time"
	{{- end}}

	"{{.OrmImport}}"
	{{- if .HasRelations}}
	"{{.ScopeImport}}"
	{{- end}}
)
{{range .Structs}}
// {{.FactoryName}} returns a new Query for the {{.TableName}} table.
func {{.FactoryName}}(db orm.Querier) *orm.Query[{{.TypeName}}] {
	{{- if .HasRegistrations}}
	q := orm.NewQuery[{{.TypeName}}](
		db, orm.ResolveTableName[{{.TypeName}}]("{{.TableName}}"), {{.ColumnsVar}}, []string{ {{- quoteList .PKColumns -}} },
		{{.ScanFunc}}, {{.ColValFunc}}, {{if .AutoPK}}{{.SetPKFunc}}{{else}}nil{{end}},
	)
	{{- if .ImmutableColumns}}
	q.RegisterImmutable({{quoteList .ImmutableColumns}})
	{{- end}}
	{{- if .LazyColumns}}
	q.RegisterLazy({{quoteList .LazyColumns}})
	{{- end}}
	{{- if .CreatedAtFields}}
	q.RegisterCreatedAt({{.SetCreatedAtFunc}})
	{{- end}}
	{{- range .Relations}}
	q.RegisterPreloader("{{.FieldName}}", {{.PreloaderName}})
	{{- end}}
	return q
	{{- else}}
	return orm.NewQuery[{{.TypeName}}](
		db, orm.ResolveTableName[{{.TypeName}}]("{{.TableName}}"), {{.ColumnsVar}}, []string{ {{- quoteList .PKColumns -}} },
		{{.ScanFunc}}, {{.ColValFunc}}, {{if .AutoPK}}{{.SetPKFunc}}{{else}}nil{{end}},
	)
	{{- end}}
}

var {{.ColumnsVar}} = []string{ {{- quoteList .EagerColumns -}} }

func {{.ScanFunc}}(rows *sql.Rows) ({{.TypeName}}, error) {
	cols, _ := rows.Columns()
	var v {{.TypeName}}
	dest := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		{{- range .Fields}}
		case {{quote .Column}}:
			dest[i] = &v.{{.Name}}
		{{- end}}
		default:
			dest[i] = new(any)
		}
	}
	err := rows.Scan(dest...)
	return v, err
}
{{if .AutoPK}}
func {{.ColValFunc}}(v *{{.TypeName}}, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} },
			[]any{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}v.{{$f.Name}}{{end -}} }
	}
	return []string{ {{- range $i, $f := .NonPKFields}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} },
		[]any{ {{- range $i, $f := .NonPKFields}}{{if $i}}, {{end}}v.{{$f.Name}}{{end -}} }
}

func {{.SetPKFunc}}(v *{{.TypeName}}, id int64) {
	v.{{.AutoPK.Name}} = {{.SetPKConversion}}
}
{{else}}
func {{.ColValFunc}}(v *{{.TypeName}}, _ bool) ([]string, []any) {
	return []string{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{quote $f.Column}}{{end -}} },
		[]any{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}v.{{$f.Name}}{{end -}} }
}
{{end}}
{{- if .CreatedAtFields}}
func {{.SetCreatedAtFunc}}(v *{{.TypeName}}, now time.Time) {
	{{- range .CreatedAtFields}}
	{{- if hasPrefix .GoType "*"}}
	if v.{{.Name}} == nil {
		v.{{.Name}} = {{.Setter}}
	}
	{{- else}}
	if v.{{.Name}}.IsZero() {
		v.{{.Name}} = {{.Setter}}
	}
	{{- end}}
	{{- end}}
}
{{- end}}
{{- range .Relations}}
{{- if eq .Shape "owner_fk"}}

func {{.PreloaderName}}(ctx context.Context, db orm.Querier, results []{{.ParentType}}) error {
	ids := make([]{{.TargetKeyType}}, 0, len(results))
	for i := range results {
		{{- if .FKIsPointer}}
		if results[i].{{.FKField}} != nil {
			ids = append(ids, *results[i].{{.FKField}})
		}
		{{- else}}
		ids = append(ids, results[i].{{.FKField}})
		{{- end}}
	}
	if len(ids) == 0 {
		return nil
	}
	related, err := {{.TargetFactory}}(db).Scopes(scope.In("{{.TargetPKColumn}}", ids)).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[{{.TargetKeyType}}]{{.ElemType}}, len(related))
	for i := range related {
		byPK[related[i].{{.TargetPKField}}] = {{.Elem}}
	}
	for i := range results {
		{{- if .FKIsPointer}}
		if fk := results[i].{{.FKField}}; fk != nil {
			results[i].{{.FieldName}} = byPK[*fk]
		}
		{{- else}}
		results[i].{{.FieldName}} = byPK[results[i].{{.FKField}}]
		{{- end}}
	}
	return nil
}
{{- else if eq .Shape "inverse_fk"}}

func {{.PreloaderName}}(ctx context.Context, db orm.Querier, results []{{.ParentType}}) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]{{.ParentKeyType}}, len(results))
	for i := range results {
		ids[i] = results[i].{{.ParentPKField}}
	}
	related, err := {{.TargetFactory}}(db).Scopes(scope.In("{{.FKColumn}}", ids), scope.OrderBy("{{.TargetPKColumn}}")).All(ctx)
	if err != nil {
		return err
	}
	byFK := make(map[{{.ParentKeyType}}]{{if .IsSlice}}[]{{end}}{{.ElemType}}, len(results))
	for i := range related {
		fk := related[i].{{.FKField}}
		{{- if .FKIsPointer}}
		if fk == nil {
			continue
		}
		{{- end}}
		{{- if .IsSlice}}
		byFK[{{.FKDeref}}fk] = append(byFK[{{.FKDeref}}fk], {{.Elem}})
		{{- else}}
		byFK[{{.FKDeref}}fk] = {{.Elem}}
		{{- end}}
	}
	for i := range results {
		results[i].{{.FieldName}} = byFK[results[i].{{.ParentPKField}}]
	}
	return nil
}
{{- else}}

func {{.PreloaderName}}(ctx context.Context, db orm.Querier, results []{{.ParentType}}) error {
	if len(results) == 0 {
		return nil
	}
	ids := make([]{{.ParentKeyType}}, len(results))
	for i := range results {
		ids[i] = results[i].{{.ParentPKField}}
	}
	pairs, err := orm.QueryJoinTable[{{.ParentKeyType}}, {{.TargetKeyType}}](
		ctx, db, "{{.JoinTable}}", "{{.SourceColumn}}", "{{.TargetColumn}}", ids,
	)
	if err != nil || len(pairs) == 0 {
		return err
	}
	related, err := {{.TargetFactory}}(db).Scopes(scope.In("{{.TargetPKColumn}}", orm.UniqueTargets(pairs))).All(ctx)
	if err != nil {
		return err
	}
	byPK := make(map[{{.TargetKeyType}}]{{.ElemType}}, len(related))
	for i := range related {
		byPK[related[i].{{.TargetPKField}}] = {{.Elem}}
	}
	grouped := orm.GroupBySource(pairs)
	for i := range results {
		var items []{{.ElemType}}
		for _, id := range grouped[results[i].{{.ParentPKField}}] {
			if v, ok := byPK[id]; ok {
				items = append(items, v)
			}
		}
		results[i].{{.FieldName}} = items
	}
	return nil
}
{{- end}}
{{- end}}
{{end}}`

func unexportedName(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	// Leading acronyms are lowered as a whole: "CDColumns" → "cdColumns".
	i := 0
	for i < len(runes) && unicode.IsUpper(runes[i]) {
		i++
	}
	switch {
	case i == 0:
		return s
	case i == 1 || i == len(runes):
		for j := 0; j < i; j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
	default:
		for j := 0; j < i-1; j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
	}
	return string(runes)
}
