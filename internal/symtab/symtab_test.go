package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/object"
)

func TestInternIsIdempotent(t *testing.T) {
	a := Intern("frobnicate")
	b := Intern("frobnicate")
	assert.Same(t, a, b)
}

func TestInternNilReturnsCanonicalNilSymbol(t *testing.T) {
	assert.Same(t, object.NilSymbol, Intern("nil"))
}

func TestLookupReportsAbsence(t *testing.T) {
	_, ok := Lookup("definitely-not-interned-yet")
	assert.False(t, ok)

	Intern("definitely-not-interned-yet")
	s, ok := Lookup("definitely-not-interned-yet")
	assert.True(t, ok)
	assert.Equal(t, "definitely-not-interned-yet", s.Name)
}

func TestProvideFeaturep(t *testing.T) {
	f := Intern("my-unique-test-feature")
	assert.False(t, Featurep(f))
	Provide(f)
	assert.True(t, Featurep(f))
}

func TestTraceAllReachesFunctionCellAndPlist(t *testing.T) {
	sym := Intern("traced-test-symbol")
	prop := Intern("traced-test-prop")
	sym.Put(prop, object.Int(99))
	fn := object.NewSubrFn("traced-test-fn", object.FnArgs{}, func(args []object.Object, e object.Environment, w object.Witness) (object.Object, error) {
		return object.Nil(), nil
	})
	sym.SetFunc(fn)

	var seen []object.Object
	traceAll(func(o object.Object) { seen = append(seen, o) })

	var found, foundFn, foundPlistValue bool
	for _, o := range seen {
		switch o.Kind() {
		case object.KindSymbol:
			s, _ := object.As[*object.Symbol](o)
			if s == sym {
				found = true
			}
		case object.KindSubrFn:
			f, _ := object.As[*object.SubrFn](o)
			if f == fn {
				foundFn = true
			}
		case object.KindInt:
			if o.IntValue() == 99 {
				foundPlistValue = true
			}
		}
	}
	assert.True(t, found, "the interned symbol itself must be in the pushed set")
	assert.True(t, foundFn, "the symbol's function cell must be in the pushed set")
	assert.True(t, foundPlistValue, "the symbol's plist value must be in the pushed set")
}

func TestSymtabRegistersAsImplicitRoot(t *testing.T) {
	cx := gc.NewContext(0)
	b, err := cx.AllocCons(object.Int(1), object.Nil())
	if err != nil {
		t.Fatal(err)
	}
	held := b.Deref(cx)

	sym := Intern("root-holder-test-symbol")
	sym.SetFunc(object.NewSubrFn("x", object.FnArgs{}, func(args []object.Object, e object.Environment, w object.Witness) (object.Object, error) {
		return object.Nil(), nil
	}))
	prop := Intern("root-holder-test-prop")
	sym.Put(prop, held)

	stats := cx.GarbageCollect()
	assert.GreaterOrEqual(t, stats.Marked, 1, "a value reachable only via a symbol's plist must survive through symtab's implicit root")
}
