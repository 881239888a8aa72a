package gen

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"

	"github.com/fast/visitor"
)

// Load inspects the configured package and distills its type information
// into a generation plan.
func Load(config *Config) (*Plan, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	loadConfig := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes,
		Dir:  config.Dir,
	}
	pkgs, err := packages.Load(loadConfig, config.Package)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", config.Package, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package for %v, got %v", config.Package, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("failed to load %v: %v", config.Package, pkg.Errors[0])
	}
	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("package %v has no source files", config.Package)
	}

	targets := make(map[string]bool, len(config.Types))
	for _, typeConfig := range config.Types {
		targets[typeConfig.Name] = true
	}

	plan := &Plan{
		PkgName: pkg.Types.Name(),
		Dir:     filepath.Dir(pkg.GoFiles[0]),
	}
	scope := pkg.Types.Scope()
	for _, typeConfig := range config.Types {
		structType, err := lookupStruct(scope, typeConfig.Name)
		if err != nil {
			return nil, err
		}
		typePlan := &TypePlan{
			Name:     typeConfig.Name,
			Receiver: receiverOf(typeConfig.Name),
			SkipSelf: typeConfig.SkipSelf,
			Mutable:  config.Mutable,
		}
		for i := 0; i < structType.NumFields(); i++ {
			field := structType.Field(i)
			if !field.Exported() {
				continue
			}
			tag := visitor.ParseTag(reflect.StructTag(structType.Tag(i)))
			if tag.Skip {
				continue
			}
			fieldPlan := planField(field, tag, targets, pkg.Types.Path())
			if fieldPlan != nil {
				typePlan.Fields = append(typePlan.Fields, fieldPlan)
			}
		}
		plan.Types = append(plan.Types, typePlan)
	}
	return plan, nil
}

func lookupStruct(scope *types.Scope, name string) (*types.Struct, error) {
	obj := scope.Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("type %v was not found", name)
	}
	structType, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("type %v is not a struct", name)
	}
	return structType, nil
}

func planField(field *types.Var, tag *visitor.Tag, targets map[string]bool, pkgPath string) *FieldPlan {
	if tag.With != "" {
		return &FieldPlan{Name: field.Name(), Kind: KindWith, With: tag.With}
	}
	fieldType := field.Type()
	if isSilent(fieldType) {
		return nil
	}
	if isTarget(fieldType, targets, pkgPath) {
		return &FieldPlan{Name: field.Name(), Kind: KindTarget}
	}
	if pointer, ok := fieldType.(*types.Pointer); ok && isTarget(pointer.Elem(), targets, pkgPath) {
		return &FieldPlan{Name: field.Name(), Kind: KindTarget, NilGuard: true}
	}
	return &FieldPlan{Name: field.Name(), Kind: KindFallback}
}

// isSilent reports whether a field produces no events by default: scalar
// leaves and time.Time, mirroring the reflection engine.
func isSilent(t types.Type) bool {
	switch actual := t.(type) {
	case *types.Basic:
		return true
	case *types.Named:
		if actual.String() == "time.Time" {
			return true
		}
		if _, ok := actual.Underlying().(*types.Basic); ok {
			return true
		}
	}
	return false
}

func isTarget(t types.Type, targets map[string]bool, pkgPath string) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	if _, ok = named.Underlying().(*types.Struct); !ok {
		return false
	}
	if named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != pkgPath {
		return false
	}
	return targets[named.Obj().Name()]
}
