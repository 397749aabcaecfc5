package gen

import (
	"fmt"
	"strings"
)

// Resolved relation shapes. Each one maps to one preloader template.
const (
	// ownerFK: the join column is a field of the source struct
	// (one_to_one or many_to_one owner).
	ownerFK = "owner_fk"
	// inverseFK: the join column is a field of the target struct, written
	// by the target's owner relation (mapped_by).
	inverseFK = "inverse_fk"
	// joinPairs: (source, target) pairs read from a join table, or from
	// an unmapped join column of the target table.
	joinPairs = "join_pairs"
)

// ResolvedRelation is a RelationInfo bound to its target struct and to the
// columns that hold it.
type ResolvedRelation struct {
	RelationInfo
	Shape  string
	Target *StructInfo

	// FKField is the join column field: on the source for ownerFK, on the
	// target for inverseFK.
	FKField *FieldInfo

	// JoinTable, SourceColumn and TargetColumn locate the pairs of a
	// joinPairs relation.
	JoinTable    string
	SourceColumn string
	TargetColumn string

	// Owned is set when this side declares the join table or join column,
	// so it renders the DDL for it.
	Owned bool
	// InTargetTable is set for one_to_many join columns living in the
	// target table (JoinTable is the target table then).
	InTargetTable bool
	// Unique is set for one_to_many join tables: a target has one source.
	Unique bool
}

// ResolveRelations binds every relation of info to a struct of infos.
// Targets must be declared in the same file.
func ResolveRelations(info *StructInfo, infos []*StructInfo) ([]ResolvedRelation, error) {
	out := make([]ResolvedRelation, 0, len(info.Relations))
	for _, rel := range info.Relations {
		r, err := resolveRelation(info, rel, infos)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", info.Name, rel.FieldName, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func resolveRelation(info *StructInfo, rel RelationInfo, infos []*StructInfo) (ResolvedRelation, error) {
	target := findStructInfo(infos, rel.TargetType)
	if target == nil {
		return ResolvedRelation{}, fmt.Errorf("target %s is not a mapped struct of this file", rel.TargetType)
	}
	if _, err := target.PrimaryKeyField(); err != nil {
		return ResolvedRelation{}, fmt.Errorf("target %s: %w", target.Name, err)
	}
	r := ResolvedRelation{RelationInfo: rel, Target: target}

	if mappedBy := rel.Options["mapped_by"]; mappedBy != "" {
		return resolveInverse(info, r, mappedBy, infos)
	}

	switch rel.Kind {
	case "one_to_one", "many_to_one":
		if rel.IsSlice {
			return r, fmt.Errorf("%s must not be a slice", rel.Kind)
		}
		fk, err := ownerJoinColumn(info, rel, target)
		if err != nil {
			return r, err
		}
		pk, _ := target.PrimaryKeyField()
		if strings.TrimPrefix(fk.GoType, "*") != pk.GoType {
			return r, fmt.Errorf("join column %s is %s, key of %s is %s", fk.Column, fk.GoType, target.Name, pk.GoType)
		}
		r.Shape = ownerFK
		r.FKField = fk
		return r, nil

	case "one_to_many", "many_to_many":
		if !rel.IsSlice {
			return r, fmt.Errorf("%s must be a slice", rel.Kind)
		}
		r.Shape = joinPairs
		r.Owned = true
		if table := rel.Options["join_table"]; table != "" {
			r.JoinTable = table
			r.SourceColumn = rel.Options["join_column"]
			r.TargetColumn = rel.Options["inverse_join_column"]
			if r.SourceColumn == "" || r.TargetColumn == "" {
				return r, fmt.Errorf("join_table %s needs join_column and inverse_join_column", table)
			}
			r.Unique = rel.Kind == "one_to_many"
			return r, nil
		}
		if col := rel.Options["join_column"]; col != "" && rel.Kind == "one_to_many" {
			pk, _ := target.PrimaryKeyField()
			r.JoinTable = target.TableName
			r.SourceColumn = col
			r.TargetColumn = pk.Column
			r.InTargetTable = true
			return r, nil
		}
		return r, fmt.Errorf("%s needs join_table or mapped_by", rel.Kind)

	default:
		return r, fmt.Errorf("unknown relation kind %q", rel.Kind)
	}
}

// resolveInverse resolves a mapped_by side from the owner relation of the
// target.
func resolveInverse(info *StructInfo, r ResolvedRelation, mappedBy string, infos []*StructInfo) (ResolvedRelation, error) {
	var ownerRel *RelationInfo
	for i := range r.Target.Relations {
		if r.Target.Relations[i].FieldName == mappedBy {
			ownerRel = &r.Target.Relations[i]
		}
	}
	if ownerRel == nil {
		return r, fmt.Errorf("mapped_by %s: no such relation on %s", mappedBy, r.Target.Name)
	}
	if ownerRel.TargetType != info.Name {
		return r, fmt.Errorf("mapped_by %s: %s.%s targets %s", mappedBy, r.Target.Name, mappedBy, ownerRel.TargetType)
	}
	if ownerRel.Options["mapped_by"] != "" {
		return r, fmt.Errorf("mapped_by %s: both sides are inverse", mappedBy)
	}
	owner, err := resolveRelation(r.Target, *ownerRel, infos)
	if err != nil {
		return r, fmt.Errorf("mapped_by %s: %w", mappedBy, err)
	}

	switch {
	case owner.Shape == ownerFK:
		r.Shape = inverseFK
		r.FKField = owner.FKField
	case owner.Shape == joinPairs && !owner.InTargetTable:
		if !r.IsSlice {
			return r, fmt.Errorf("mapped_by %s: inverse of a join table must be a slice", mappedBy)
		}
		r.Shape = joinPairs
		r.JoinTable = owner.JoinTable
		r.SourceColumn = owner.TargetColumn
		r.TargetColumn = owner.SourceColumn
	default:
		return r, fmt.Errorf("mapped_by %s: a join column in the target table has no inverse side", mappedBy)
	}
	return r, nil
}

// ownerJoinColumn finds the field holding the join column of an owner
// relation: the column named by join_column, else the field whose
// references option names the target table.
func ownerJoinColumn(info *StructInfo, rel RelationInfo, target *StructInfo) (*FieldInfo, error) {
	col := rel.Options["join_column"]
	for i := range info.Fields {
		f := &info.Fields[i]
		if (col != "" && f.Column == col) || (col == "" && f.References == target.TableName) {
			if !isIntType(strings.TrimPrefix(f.GoType, "*")) {
				return nil, fmt.Errorf("join column %s must be an integer, got %s", f.Column, f.GoType)
			}
			return f, nil
		}
	}
	if col != "" {
		return nil, fmt.Errorf("join column %s is not a field", col)
	}
	return nil, fmt.Errorf("no field references %s; add references:%s or join_column", target.TableName, target.TableName)
}

func findStructInfo(infos []*StructInfo, name string) *StructInfo {
	for _, info := range infos {
		if info.Name == name {
			return info
		}
	}
	return nil
}
