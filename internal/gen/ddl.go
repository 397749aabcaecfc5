package gen

import (
	"errors"
	"fmt"
	"strings"
)

// RenderDDL returns a CREATE TABLE statement for info in the given dialect
// ("sqlite", "postgres" or "mysql"). Relations are not rendered; use
// RenderSchema for the tables of a whole file.
func RenderDDL(info *StructInfo, dialect string) (string, error) {
	if err := checkDialect(dialect); err != nil {
		return "", err
	}
	return renderTable(info, nil, dialect)
}

// RenderSchema returns the CREATE TABLE statements of every struct of infos,
// separated by blank lines. A table follows the tables it references. Join
// columns that one_to_many relations keep in the target table are added to
// it, and the join tables of owned relations come last.
func RenderSchema(infos []*StructInfo, dialect string) (string, error) {
	if err := checkDialect(dialect); err != nil {
		return "", err
	}

	byTable := make(map[string]*StructInfo, len(infos))
	for _, info := range infos {
		byTable[info.TableName] = info
	}
	extra := make(map[*StructInfo][]FieldInfo)
	deps := make(map[*StructInfo][]*StructInfo)
	var joinTables []string
	for _, info := range infos {
		for _, f := range info.Fields {
			if ref, ok := byTable[f.References]; ok && ref != info {
				deps[info] = append(deps[info], ref)
			}
		}
		rels, err := ResolveRelations(info, infos)
		if err != nil {
			return "", err
		}
		for _, rel := range rels {
			switch {
			case !rel.Owned:
			case rel.InTargetTable:
				pk, err := info.PrimaryKeyField()
				if err != nil {
					return "", fmt.Errorf("%s.%s: %w", info.Name, rel.FieldName, err)
				}
				extra[rel.Target] = append(extra[rel.Target], FieldInfo{
					Name:       rel.SourceColumn,
					Column:     rel.SourceColumn,
					GoType:     strings.TrimPrefix(pk.GoType, "*"),
					References: info.TableName,
				})
				deps[rel.Target] = append(deps[rel.Target], info)
			default:
				stmt, err := renderJoinTable(info, rel, dialect)
				if err != nil {
					return "", err
				}
				joinTables = append(joinTables, stmt)
			}
		}
	}

	stmts := make([]string, 0, len(infos)+len(joinTables))
	done := make(map[*StructInfo]bool, len(infos))
	for len(done) < len(infos) {
		next := pickReady(infos, deps, done)
		if next == nil {
			return "", errors.New("cyclic references between tables")
		}
		stmt, err := renderTable(next, extra[next], dialect)
		if err != nil {
			return "", err
		}
		stmts = append(stmts, stmt)
		done[next] = true
	}
	stmts = append(stmts, joinTables...)
	return strings.Join(stmts, "\n"), nil
}

// pickReady returns the first struct not yet rendered whose referenced
// tables are all rendered.
func pickReady(infos []*StructInfo, deps map[*StructInfo][]*StructInfo, done map[*StructInfo]bool) *StructInfo {
	for _, info := range infos {
		if done[info] {
			continue
		}
		ready := true
		for _, dep := range deps[info] {
			if !done[dep] {
				ready = false
			}
		}
		if ready {
			return info
		}
	}
	return nil
}

func renderJoinTable(info *StructInfo, rel ResolvedRelation, dialect string) (string, error) {
	sourcePK, err := info.PrimaryKeyField()
	if err != nil {
		return "", fmt.Errorf("%s.%s: %w", info.Name, rel.FieldName, err)
	}
	targetPK, _ := rel.Target.PrimaryKeyField()
	sourceType, err := columnType(*sourcePK, dialect)
	if err != nil {
		return "", err
	}
	targetType, err := columnType(*targetPK, dialect)
	if err != nil {
		return "", err
	}

	lines := []string{
		rel.SourceColumn + " " + sourceType + " NOT NULL",
		rel.TargetColumn + " " + targetType + " NOT NULL",
		"PRIMARY KEY (" + rel.SourceColumn + ", " + rel.TargetColumn + ")",
	}
	if rel.Unique {
		lines = append(lines, "UNIQUE ("+rel.TargetColumn+")")
	}
	lines = append(lines,
		fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)", rel.SourceColumn, info.TableName, sourcePK.Column),
		fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)", rel.TargetColumn, rel.Target.TableName, targetPK.Column),
	)
	return createTable(rel.JoinTable, lines), nil
}

func checkDialect(dialect string) error {
	switch dialect {
	case "sqlite", "postgres", "mysql":
		return nil
	default:
		return fmt.Errorf("unknown dialect %q", dialect)
	}
}

func createTable(table string, lines []string) string {
	return fmt.Sprintf("CREATE TABLE %s (\n    %s\n);\n", table, strings.Join(lines, ",\n    "))
}

func renderTable(info *StructInfo, extra []FieldInfo, dialect string) (string, error) {
	pks := info.PrimaryKeyFields()
	if len(pks) == 0 {
		return "", fmt.Errorf("no primary key defined for %s", info.Name)
	}
	autoPK := len(pks) == 1 && isIntType(pks[0].GoType)

	lines := make([]string, 0, len(info.Fields)+len(extra)+2)
	var constraints []string
	for _, f := range append(info.Fields[:len(info.Fields):len(info.Fields)], extra...) {
		if autoPK && f.PrimaryKey {
			lines = append(lines, f.Column+" "+autoPKType(dialect))
			continue
		}
		sqlType, err := columnType(f, dialect)
		if err != nil {
			return "", fmt.Errorf("%s.%s: %w", info.Name, f.Name, err)
		}
		line := f.Column + " " + sqlType
		if f.NotNull || f.PrimaryKey {
			line += " NOT NULL"
		}
		if dialect == "sqlite" && f.Size > 0 && sqlType != "BLOB" {
			line += fmt.Sprintf(" CHECK (length(%s) <= %d)", f.Column, f.Size)
		}
		lines = append(lines, line)
		if f.References != "" {
			constraints = append(constraints, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (id)", f.Column, f.References))
		}
	}
	if !autoPK {
		cols := make([]string, len(pks))
		for i, pk := range pks {
			cols[i] = pk.Column
		}
		lines = append(lines, "PRIMARY KEY ("+strings.Join(cols, ", ")+")")
	}
	lines = append(lines, constraints...)

	return createTable(info.TableName, lines), nil
}

func autoPKType(dialect string) string {
	switch dialect {
	case "postgres":
		return "BIGSERIAL PRIMARY KEY"
	case "mysql":
		return "BIGINT AUTO_INCREMENT PRIMARY KEY"
	default:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}

func columnType(f FieldInfo, dialect string) (string, error) {
	goType := strings.TrimPrefix(f.GoType, "*")

	kind := f.SQLType
	if kind == "" {
		switch goType {
		case "orm.Date":
			kind = "date"
		case "orm.Timestamp", "time.Time":
			kind = "timestamp"
		case "[]byte":
			kind = "blob"
		}
	}

	switch kind {
	case "date":
		return "DATE", nil
	case "timestamp":
		if dialect == "mysql" {
			return "DATETIME(6)", nil
		}
		return "TIMESTAMP", nil
	case "blob":
		switch dialect {
		case "postgres":
			return "BYTEA", nil
		case "mysql":
			return "LONGBLOB", nil
		default:
			return "BLOB", nil
		}
	case "":
	default:
		return "", fmt.Errorf("unknown column type %q", kind)
	}

	switch goType {
	case "string":
		size := f.Size
		if size == 0 {
			size = 255
		}
		return fmt.Sprintf("VARCHAR(%d)", size), nil
	case "int64", "uint64":
		return "BIGINT", nil
	case "int", "int32", "int16", "int8", "uint", "uint32", "uint16", "uint8":
		return "INTEGER", nil
	case "float32":
		if dialect == "mysql" {
			return "FLOAT", nil
		}
		return "REAL", nil
	case "float64":
		switch dialect {
		case "postgres":
			return "DOUBLE PRECISION", nil
		case "mysql":
			return "DOUBLE", nil
		default:
			return "REAL", nil
		}
	case "bool":
		return "BOOLEAN", nil
	default:
		return "", fmt.Errorf("no column type for Go type %s", f.GoType)
	}
}
