package di_test

import (
	"errors"
	"testing"

	"github.com/altRush/solid-design-principles/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oven struct{ Temp int }

type recipeBook struct{ Title string }

type bakery struct {
	Oven   *oven
	Recipe *recipeBook
}

var (
	ovenKey   = di.Key("oven")
	recipeKey = di.Key("recipe")
)

func newBakery() *di.Service[bakery] {
	return di.Init(func() *bakery { return &bakery{} })
}

func bindOven(b *bakery, o *oven)         { b.Oven = o }
func bindRecipe(b *bakery, r *recipeBook) { b.Recipe = r }

// Init / Value
func TestInitAndValue(t *testing.T) {
	t.Parallel()

	svc := newBakery()

	require.NotNil(t, svc)
	require.NotNil(t, svc.Value())
	require.NotNil(t, svc.Deps)
	assert.Empty(t, svc.Deps)
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, di.DependencyKey("oven"), di.Key("oven"))
}

// With / WithAll
func TestWith_NilInjector_NoOp(t *testing.T) {
	t.Parallel()

	svc := newBakery()
	got, err := svc.With(nil)
	require.NoError(t, err)
	assert.Same(t, svc, got)
	assert.Empty(t, svc.Deps)
}

func TestWithAll_AppliesInOrderAndStopsOnError(t *testing.T) {
	t.Parallel()

	o := di.Init(func() *oven { return &oven{Temp: 180} })
	r := di.Init(func() *recipeBook { return &recipeBook{Title: "Cookies"} })
	svc := newBakery()

	injOven := di.Injecting(ovenKey, o, bindOven)
	injRecipe := di.Injecting(recipeKey, r, bindRecipe)

	_, err := svc.WithAll(injOven, injOven, injRecipe)
	require.Error(t, err)

	var dup di.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, ovenKey, dup.Key)

	assert.Same(t, o.Value(), svc.Value().Oven)
	assert.Nil(t, svc.Value().Recipe)
	assert.True(t, svc.Has(ovenKey))
	assert.False(t, svc.Has(recipeKey))
}

func TestWithAll_Success(t *testing.T) {
	t.Parallel()

	o := di.Init(func() *oven { return &oven{Temp: 200} })
	r := di.Init(func() *recipeBook { return &recipeBook{Title: "Bread"} })

	svc, err := newBakery().WithAll(
		di.Injecting(ovenKey, o, bindOven),
		di.Injecting(recipeKey, r, bindRecipe),
	)
	require.NoError(t, err)
	assert.Equal(t, 200, svc.Value().Oven.Temp)
	assert.Equal(t, "Bread", svc.Value().Recipe.Title)
	assert.Len(t, svc.Deps, 2)
}

// Injecting errors
func TestInjecting_Errors(t *testing.T) {
	t.Parallel()

	validDep := di.Init(func() *oven { return &oven{} })

	cases := []struct {
		name    string
		target  *di.Service[bakery]
		dep     *di.Service[oven]
		bind    func(*bakery, *oven)
		wantIs  error
		wantAs  any
		wantKey di.DependencyKey
	}{
		{
			name:   "nil target service",
			target: nil,
			dep:    validDep,
			bind:   bindOven,
			wantIs: di.ErrNilTarget,
		},
		{
			name:   "nil target value",
			target: &di.Service[bakery]{Deps: map[di.DependencyKey]any{}},
			dep:    validDep,
			bind:   bindOven,
			wantIs: di.ErrNilTarget,
		},
		{
			name:    "nil dependency service",
			target:  newBakery(),
			dep:     nil,
			bind:    bindOven,
			wantAs:  di.NilDependencyServiceError{},
			wantKey: ovenKey,
		},
		{
			name:    "nil dependency value",
			target:  newBakery(),
			dep:     &di.Service[oven]{},
			bind:    bindOven,
			wantAs:  di.NilDependencyServiceError{},
			wantKey: ovenKey,
		},
		{
			name:    "nil bind",
			target:  newBakery(),
			dep:     validDep,
			bind:    nil,
			wantAs:  di.NilBindError{},
			wantKey: ovenKey,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := di.Injecting(ovenKey, tc.dep, tc.bind)(tc.target)
			require.Error(t, err)

			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
				return
			}

			switch tc.wantAs.(type) {
			case di.NilDependencyServiceError:
				var got di.NilDependencyServiceError
				require.ErrorAs(t, err, &got)
				assert.Equal(t, tc.wantKey, got.Key)
			case di.NilBindError:
				var got di.NilBindError
				require.ErrorAs(t, err, &got)
				assert.Equal(t, tc.wantKey, got.Key)
			default:
				t.Fatalf("misconfigured test case")
			}

			if tc.target != nil {
				assert.Empty(t, tc.target.Deps)
			}
		})
	}
}

func TestInjecting_CreatesDepsMap(t *testing.T) {
	t.Parallel()

	o := di.Init(func() *oven { return &oven{Temp: 90} })
	target := &di.Service[bakery]{Val: &bakery{}}

	require.NoError(t, di.Injecting(ovenKey, o, bindOven)(target))
	require.NotNil(t, target.Deps)
	assert.True(t, target.Has(ovenKey))
	assert.Same(t, o.Value(), target.Val.Oven)
}

// Accessors
func TestGetAs(t *testing.T) {
	t.Parallel()

	o := di.Init(func() *oven { return &oven{Temp: 160} })
	svc, err := newBakery().With(di.Injecting(ovenKey, o, bindOven))
	require.NoError(t, err)

	got, ok := di.GetAs[bakery, oven](svc, ovenKey)
	require.True(t, ok)
	assert.Same(t, o.Value(), got)

	wrong, ok := di.GetAs[bakery, recipeBook](svc, ovenKey)
	assert.False(t, ok)
	assert.Nil(t, wrong)

	missing, ok := di.GetAs[bakery, oven](svc, recipeKey)
	assert.False(t, ok)
	assert.Nil(t, missing)
}

func TestTryGetAs(t *testing.T) {
	t.Parallel()

	o := di.Init(func() *oven { return &oven{} })
	wired, err := newBakery().With(di.Injecting(ovenKey, o, bindOven))
	require.NoError(t, err)

	cases := []struct {
		name     string
		svc      *di.Service[bakery]
		key      di.DependencyKey
		wantErr  any
		wantType string
	}{
		{name: "nil service", svc: nil, key: ovenKey, wantErr: di.MissingDependencyError{}},
		{name: "nil deps", svc: &di.Service[bakery]{Val: &bakery{}}, key: ovenKey, wantErr: di.MissingDependencyError{}},
		{
			name:    "raw nil value",
			svc:     &di.Service[bakery]{Val: &bakery{}, Deps: map[di.DependencyKey]any{ovenKey: nil}},
			key:     ovenKey,
			wantErr: di.MissingDependencyError{},
		},
		{name: "missing key", svc: wired, key: recipeKey, wantErr: di.MissingDependencyError{}},
		{name: "success", svc: wired, key: ovenKey},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := di.TryGetAs[bakery, oven](tc.svc, tc.key)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Same(t, o.Value(), got)
				return
			}

			var missing di.MissingDependencyError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.key, missing.Key)
			assert.Nil(t, got)
		})
	}
}

func TestTryGetAs_WrongType(t *testing.T) {
	t.Parallel()

	o := di.Init(func() *oven { return &oven{} })
	svc, err := newBakery().With(di.Injecting(ovenKey, o, bindOven))
	require.NoError(t, err)

	_, err = di.TryGetAs[bakery, recipeBook](svc, ovenKey)
	require.Error(t, err)

	var wt di.WrongTypeDependencyError
	require.ErrorAs(t, err, &wt)
	assert.Equal(t, ovenKey, wt.Key)
	assert.Equal(t, "*di_test.oven", wt.GotType)
}

func TestHas_Guards(t *testing.T) {
	t.Parallel()

	assert.False(t, (*di.Service[bakery])(nil).Has(ovenKey))
	assert.False(t, (&di.Service[bakery]{Val: &bakery{}}).Has(ovenKey))
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{di.DuplicateKeyError{Key: "oven"}, `di: duplicate dependency key "oven"`},
		{di.MissingDependencyError{Key: "oven"}, `di: dependency "oven" missing`},
		{di.WrongTypeDependencyError{Key: "oven", GotType: "*x.Y"}, `di: dependency "oven" has wrong type (*x.Y)`},
		{di.NilDependencyServiceError{Key: "oven"}, `di: nil dependency service for key "oven"`},
		{di.NilBindError{Key: "oven"}, `di: nil bind function for key "oven"`},
	}

	for _, tc := range cases {
		assert.EqualError(t, tc.err, tc.want)
	}
}
