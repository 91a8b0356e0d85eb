package graphql

import (
	"context"
	"reflect"
)

// Kind tells queries, mutations and subscriptions apart.
type Kind int

const (
	KindQuery Kind = iota
	KindMutation
	KindSubscription
)

// Operation is a typed request descriptor for one backend operation.
// Group names the cache group a query belongs to and, for mutations, the group they invalidate.
type Operation struct {
	Name     string
	Group    string
	Kind     Kind
	Document string
}

// Query declares a query operation.
func Query(name, group, document string) Operation {
	return Operation{Name: name, Group: group, Kind: KindQuery, Document: document}
}

// Mutation declares a mutation operation that invalidates group on success.
func Mutation(name, group, document string) Operation {
	return Operation{Name: name, Group: group, Kind: KindMutation, Document: document}
}

// Subscription declares a subscription operation.
func Subscription(name, document string) Operation {
	return Operation{Name: name, Kind: KindSubscription, Document: document}
}

// Vars are the variables of one request. Nil values are dropped before sending, so a nil
// reason reaches the backend as an absent argument rather than an explicit null.
type Vars map[string]any

func (v Vars) compact() map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		if isNil(val) {
			continue
		}
		out[k] = val
	}
	return out
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

type tokenKey struct{}

// WithToken attaches the admin's bearer token to ctx for every request made with it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the token stored by WithToken.
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}
