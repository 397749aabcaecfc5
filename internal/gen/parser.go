package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/osakanaya/beginningee6-chapter03/internal/naming"
)

// FieldInfo holds parsed metadata for one mapped column.
type FieldInfo struct {
	Name       string // Go selector from the struct value, e.g. "ID" or "ID.Title"
	Column     string // DB column name from `db:"id"` tag
	GoType     string // Go type as string, e.g. "int64", "*string", "orm.Date"
	PrimaryKey bool   // tag contains "primaryKey"
	NotNull    bool   // tag contains "notNull"
	Immutable  bool   // tag contains "immutable": never written by UPDATE
	Lazy       bool   // tag contains "lazy": not part of the default SELECT
	CreatedAt  bool   // tag contains "createdAt": stamped on INSERT
	Size       int    // from "size:N", 0 when unbounded
	SQLType    string // from "type:date|timestamp|blob", empty to infer
	References string // from "references:table", the table a join column points to
}

// RelationInfo describes a field tagged with `rel`. Relations are not
// columns; their loading is hand-written next to the generated code.
type RelationInfo struct {
	FieldName  string // "Address"
	TargetType string // element type without pointer or slice, e.g. "Address"
	Kind       string // first element of the rel tag, e.g. "one_to_one"
	IsSlice    bool
	IsPointer  bool
	Options    map[string]string // remaining "key:value" elements
}

// StructInfo holds parsed metadata for a mapped struct.
type StructInfo struct {
	Name      string         // Go struct name, e.g. "Book"
	Package   string         // Package name, e.g. "ex01"
	Fields    []FieldInfo    // Mapped columns in declaration order
	Relations []RelationInfo // Fields tagged with rel
	TableName string         // From a TableName method, else inferred
}

// PrimaryKeyFields returns the primary key columns in declaration order.
func (s *StructInfo) PrimaryKeyFields() []FieldInfo {
	var pks []FieldInfo
	for _, f := range s.Fields {
		if f.PrimaryKey {
			pks = append(pks, f)
		}
	}
	return pks
}

// PrimaryKeyField returns the single primary key field, or an error if
// none or several are defined.
func (s *StructInfo) PrimaryKeyField() (*FieldInfo, error) {
	var pk *FieldInfo
	for i := range s.Fields {
		if s.Fields[i].PrimaryKey {
			if pk != nil {
				return nil, fmt.Errorf("multiple primary keys: %s and %s", pk.Name, s.Fields[i].Name)
			}
			pk = &s.Fields[i]
		}
	}
	if pk == nil {
		return nil, fmt.Errorf("no primary key defined for %s", s.Name)
	}
	return pk, nil
}

// HasPrimaryKey reports whether at least one field is a key column.
func (s *StructInfo) HasPrimaryKey() bool {
	return len(s.PrimaryKeyFields()) > 0
}

// Parse reads the Go file at path and returns StructInfo for every struct
// that maps at least one primary key column. Structs without a key, such
// as embeddable ids or key classes, are only used to flatten embedded fields.
func Parse(filePath string) ([]*StructInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	pkg := file.Name.Name
	structs := make(map[string]*ast.StructType)
	var order []string
	tableNames := make(map[string]string)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if st, ok := ts.Type.(*ast.StructType); ok {
					structs[ts.Name.Name] = st
					order = append(order, ts.Name.Name)
				}
			}
		case *ast.FuncDecl:
			if recv, name, ok := tableNameMethod(d); ok {
				tableNames[recv] = name
			}
		}
	}

	var infos []*StructInfo
	for _, name := range order {
		fields, rels, err := parseStructFields(structs[name], structs, "")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		info := &StructInfo{
			Name:      name,
			Package:   pkg,
			Fields:    fields,
			Relations: rels,
			TableName: tableNames[name],
		}
		if !info.HasPrimaryKey() {
			continue
		}
		if info.TableName == "" {
			info.TableName = naming.TableName(name)
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// tableNameMethod recognises `func (T) TableName() string { return "x" }`
// with a value or pointer receiver.
func tableNameMethod(fd *ast.FuncDecl) (recv, table string, ok bool) {
	if fd.Recv == nil || len(fd.Recv.List) != 1 || fd.Name.Name != "TableName" || fd.Body == nil {
		return "", "", false
	}
	typ := fd.Recv.List[0].Type
	if star, isStar := typ.(*ast.StarExpr); isStar {
		typ = star.X
	}
	ident, isIdent := typ.(*ast.Ident)
	if !isIdent || len(fd.Body.List) != 1 {
		return "", "", false
	}
	ret, isRet := fd.Body.List[0].(*ast.ReturnStmt)
	if !isRet || len(ret.Results) != 1 {
		return "", "", false
	}
	lit, isLit := ret.Results[0].(*ast.BasicLit)
	if !isLit || lit.Kind != token.STRING {
		return "", "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", "", false
	}
	return ident.Name, s, true
}

// parseStructFields extracts mapped fields and relations from a struct.
// prefix is the selector of an enclosing embedded field, e.g. "ID.".
func parseStructFields(st *ast.StructType, structs map[string]*ast.StructType, prefix string) ([]FieldInfo, []RelationInfo, error) {
	fields := make([]FieldInfo, 0, len(st.Fields.List))
	var rels []RelationInfo
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 || !field.Names[0].IsExported() {
			continue // anonymous or unexported, skip
		}
		tag := reflect.StructTag("")
		if field.Tag != nil {
			tag = reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		}

		if relTag, ok := tag.Lookup("rel"); ok {
			rels = append(rels, parseRelation(field, relTag))
			continue
		}

		fi, skip := parseField(field, tag)
		if skip {
			continue
		}

		if dbTag, _ := tag.Lookup("db"); hasOption(dbTag, "embedded") {
			inner, ok := structs[fi.GoType]
			if !ok {
				return nil, nil, fmt.Errorf("embedded field %s: struct %s not found in file", fi.Name, fi.GoType)
			}
			sub, _, err := parseStructFields(inner, structs, prefix+fi.Name+".")
			if err != nil {
				return nil, nil, err
			}
			for i := range sub {
				sub[i].PrimaryKey = sub[i].PrimaryKey || fi.PrimaryKey
			}
			fields = append(fields, sub...)
			continue
		}

		fi.Name = prefix + fi.Name
		fields = append(fields, fi)
	}
	return fields, rels, nil
}

func parseField(field *ast.Field, tag reflect.StructTag) (FieldInfo, bool) {
	name := field.Names[0].Name
	goType := typeToString(field.Type)

	// Defaults: column inferred from field name, integer ID field is primary key.
	fi := FieldInfo{
		Name:       name,
		Column:     naming.CamelToSnake(name),
		GoType:     goType,
		PrimaryKey: name == "ID" && isIntType(goType),
	}

	dbTag, ok := tag.Lookup("db")
	if !ok {
		return fi, false
	}
	if dbTag == "-" {
		return FieldInfo{}, true // explicitly skipped
	}
	parts := strings.Split(dbTag, ",")
	if parts[0] != "" {
		fi.Column = parts[0]
	}
	for _, opt := range parts[1:] {
		key, value, _ := strings.Cut(opt, ":")
		switch key {
		case "primaryKey":
			fi.PrimaryKey = true
		case "notNull":
			fi.NotNull = true
		case "immutable":
			fi.Immutable = true
		case "lazy":
			fi.Lazy = true
		case "createdAt":
			fi.CreatedAt = true
		case "size":
			fi.Size, _ = strconv.Atoi(value)
		case "type":
			fi.SQLType = value
		case "references":
			fi.References = value
		}
	}
	return fi, false
}

func parseRelation(field *ast.Field, relTag string) RelationInfo {
	ri := RelationInfo{FieldName: field.Names[0].Name}

	typ := field.Type
	if arr, ok := typ.(*ast.ArrayType); ok && arr.Len == nil {
		ri.IsSlice = true
		typ = arr.Elt
	}
	if star, ok := typ.(*ast.StarExpr); ok {
		ri.IsPointer = true
		typ = star.X
	}
	ri.TargetType = typeToString(typ)

	parts := strings.Split(relTag, ",")
	ri.Kind = parts[0]
	for _, opt := range parts[1:] {
		key, value, _ := strings.Cut(opt, ":")
		if ri.Options == nil {
			ri.Options = make(map[string]string)
		}
		ri.Options[key] = value
	}
	return ri
}

func hasOption(tag, option string) bool {
	parts := strings.Split(tag, ",")
	for _, p := range parts[1:] {
		if p == option {
			return true
		}
	}
	return false
}

func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", typeToString(t.Len), typeToString(t.Elt))
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func isIntType(goType string) bool {
	switch goType {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return true
	default:
		return false
	}
}
