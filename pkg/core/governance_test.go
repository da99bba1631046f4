//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/leapstack-labs/contentlint"

// =============================================================================
// COHESION TEST - Core declarations must be shared by multiple packages
// =============================================================================

// TestGovernance_CoreCohesion verifies that every exported declaration in
// pkg/core is used by at least two other packages. A declaration with one
// user belongs in that user.
func TestGovernance_CoreCohesion(t *testing.T) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps | packages.NeedImports,
	}, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	corePath := modulePath + "/pkg/core"
	users := make(map[types.Object]map[string]bool)
	for _, p := range pkgs {
		if p.PkgPath != corePath {
			continue
		}
		scope := p.Types.Scope()
		for _, name := range scope.Names() {
			if obj := scope.Lookup(name); obj.Exported() {
				users[obj] = make(map[string]bool)
			}
		}
	}
	if len(users) == 0 {
		t.Fatal("Could not find pkg/core")
	}

	for _, p := range pkgs {
		if p.PkgPath == corePath || p.TypesInfo == nil {
			continue
		}
		for _, obj := range p.TypesInfo.Uses {
			if set, ok := users[obj]; ok {
				set[strings.TrimPrefix(p.PkgPath, modulePath+"/")] = true
			}
		}
	}

	for obj, set := range users {
		if isCohesionAllowlisted(obj.Name()) {
			continue
		}
		switch len(set) {
		case 0:
			t.Logf("WARNING: Unused core declaration: %s (consider deleting)", obj.Name())
		case 1:
			for user := range set {
				t.Errorf("COHESION VIOLATION: 'core.%s' is used ONLY by '%s'.\n"+
					"   Fix: Move it from pkg/core to %s.", obj.Name(), user, user)
			}
		}
	}
}

// isCohesionAllowlisted returns true for names allowed to have a single user.
func isCohesionAllowlisted(name string) bool {
	allowlist := map[string]bool{
		"ErrMissingRuleID": true, // Sentinel checked with errors.Is by callers
		"LintConfig":       true, // Embedded by lint.Config
	}
	return allowlist[name]
}

// =============================================================================
// PURITY TEST - No type alias re-exports of core types
// =============================================================================

// TestGovernance_NoTypeAliasReexports ensures packages don't re-export core
// types under their own name. Consumers import pkg/core directly.
func TestGovernance_NoTypeAliasReexports(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	// Rule definitions name severities through lint; the config package
	// decodes rule entries straight into core.RuleConfig.
	allowed := map[string]bool{
		modulePath + "/pkg/lint.Severity":              true,
		modulePath + "/internal/cli/config.RuleConfig": true,
	}

	corePath := modulePath + "/pkg/core"
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 || pkg.PkgPath == corePath {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			typeName, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !typeName.Exported() || !typeName.IsAlias() {
				continue
			}
			named, ok := types.Unalias(typeName.Type()).(*types.Named)
			if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != corePath {
				continue
			}
			if allowed[pkg.PkgPath+"."+name] {
				continue
			}
			t.Errorf("PURITY VIOLATION: Package '%s' re-exports core.%s as alias '%s'.\n"+
				"   Fix: Remove the alias. Consumers should use core.%s directly.",
				strings.TrimPrefix(pkg.PkgPath, modulePath+"/"), named.Obj().Name(), name, named.Obj().Name())
		}
	}
}
