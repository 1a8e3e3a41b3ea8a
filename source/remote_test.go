/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/meridianapps/rpcsource/errors"
	"github.com/meridianapps/rpcsource/provider"
	"github.com/meridianapps/rpcsource/query"
	"github.com/meridianapps/rpcsource/record"
	"github.com/meridianapps/rpcsource/transport/mock"
)

func newTestSource(t *testing.T, tr *mock.Transport, opts ...Option) *Remote {
	t.Helper()
	p, err := provider.New(provider.Endpoint{Address: "http://svc", Contract: "Orders"},
		provider.WithTransport(tr))
	require.NoError(t, err)
	return NewRemote(p, opts...)
}

func TestCreateWrapsRawPayload(t *testing.T) {
	tr := mock.New().WithResult("Orders.create", map[string]any{"id": "7", "status": "draft"})
	s := newTestSource(t, tr)

	rec, err := s.Create(context.Background(), map[string]any{"status": "draft"})
	require.NoError(t, err)

	v, _ := rec.Get("id")
	assert.Equal(t, "7", v)

	calls := tr.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{map[string]any{"status": "draft"}}, calls[0].Args)
}

func TestReadPassesKeyAndMeta(t *testing.T) {
	tr := mock.New().WithResult("Orders.read", map[string]any{"id": "42"})
	s := newTestSource(t, tr)

	_, err := s.Read(context.Background(), "42", map[string]any{"withDetails": true})
	require.NoError(t, err)

	calls := tr.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"42", map[string]any{"withDetails": true}}, calls[0].Args)
}

func TestBeforeCallObserverRewritesArgs(t *testing.T) {
	tr := mock.New().WithHandler(func(method string, args any) (any, error) {
		return map[string]any{}, nil
	})
	s := newTestSource(t, tr)

	s.OnBeforeCall(func(ev *CallEvent) {
		assert.Equal(t, OpRead, ev.Op)
		ev.Args = []any{"rewritten", map[string]any(nil)}
	})

	_, err := s.Read(context.Background(), "original", nil)
	require.NoError(t, err)

	calls := tr.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"rewritten", map[string]any(nil)}, calls[0].Args)
}

func TestUpdateResolvesKey(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want any
	}{
		{"scalar result is the key", "55", "55"},
		{"map result resolves the key property", map[string]any{"id": "56"}, "56"},
		{"nil result falls back to the payload", nil, "57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mock.New().WithResult("Orders.update", tt.raw)
			s := newTestSource(t, tr, WithKeyProperty("id"))

			rec := record.FromMap(map[string]any{"id": "57", "status": "open"})
			key, err := s.Update(context.Background(), rec, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestUpdateOnlyChangedNarrowsRecord(t *testing.T) {
	tr := mock.New().WithResult("Orders.update", nil)
	s := newTestSource(t, tr, WithKeyProperty("id"), WithUpdateOnlyChanged())

	rec := record.FromMap(map[string]any{"id": "42", "status": "open", "total": 10})
	rec.Set("status", "closed")

	_, err := s.Update(context.Background(), rec, nil)
	require.NoError(t, err)

	calls := tr.Calls()
	require.Len(t, calls, 1)
	args := calls[0].Args.([]any)
	assert.Equal(t, map[string]any{"id": "42", "status": "closed"}, args[0])
}

func TestUpdateOnlyChangedWithNoChangesSendsOnlyIdentifier(t *testing.T) {
	tr := mock.New().WithResult("Orders.update", nil)
	s := newTestSource(t, tr, WithKeyProperty("id"), WithUpdateOnlyChanged())

	rec := record.FromMap(map[string]any{"id": "42", "status": "open"})

	_, err := s.Update(context.Background(), rec, nil)
	require.NoError(t, err)

	args := tr.Calls()[0].Args.([]any)
	assert.Equal(t, map[string]any{"id": "42"}, args[0])
}

func TestUpdateOnlyChangedWithoutIdentifierFailsFast(t *testing.T) {
	tr := mock.New()
	s := newTestSource(t, tr, WithKeyProperty("id"), WithUpdateOnlyChanged())

	rec := record.New()
	rec.Set("status", "open")

	_, err := s.Update(context.Background(), rec, nil)
	require.Error(t, err)
	assert.True(t, errors.IsArgument(err))
	assert.Empty(t, tr.Calls(), "argument errors must fail before any network call")
}

func TestUpdateOnlyChangedNarrowsRecordSet(t *testing.T) {
	tr := mock.New().WithResult("Orders.update", nil)
	s := newTestSource(t, tr, WithKeyProperty("id"), WithUpdateOnlyChanged())

	kept := record.FromMap(map[string]any{"id": "1", "status": "open"})
	changed := record.FromMap(map[string]any{"id": "2", "status": "open"})
	set := record.NewSet(kept, changed)
	changed.Set("status", "closed")
	fresh := record.New()
	fresh.Set("id", "3")
	set.Add(fresh)

	_, err := s.Update(context.Background(), set, nil)
	require.NoError(t, err)

	args := tr.Calls()[0].Args.([]any)
	members := args[0].([]map[string]any)
	require.Len(t, members, 2, "unchanged members must be dropped")
	assert.Equal(t, "3", members[0]["id"])
	assert.Equal(t, "2", members[1]["id"])
}

func TestQueryBuildsDataSet(t *testing.T) {
	tr := mock.New().WithResult("Orders.query", map[string]any{
		"Items":   []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}},
		"HasMore": false,
	})
	s := newTestSource(t, tr)

	ds, err := s.Query(context.Background(), query.New())
	require.NoError(t, err)
	assert.Equal(t, 2, ds.All.Len())
	assert.False(t, ds.HasMore)
}

func TestQueryBareListResult(t *testing.T) {
	tr := mock.New().WithResult("Orders.query", []any{map[string]any{"id": "1"}})
	s := newTestSource(t, tr)

	q := query.New()
	q.Meta = map[string]any{query.MetaHasMore: true}

	ds, err := s.Query(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.All.Len())
	assert.True(t, ds.HasMore, "hasMore falls back to the query's resolution")
}

func TestDebugLoggingDistinguishesCancellation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	cancelErr := errors.NewCancellationError("Orders.read")
	tr := mock.New().WithFailure("Orders.read", cancelErr)
	s := newTestSource(t, tr, WithDebug(), WithLogger(logger))

	_, err := s.Read(context.Background(), "42", nil)
	assert.Equal(t, cancelErr, err, "the caller's error must not be altered")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)

	failErr := errors.NewRemoteCallError("Orders.read", assert.AnError)
	tr2 := mock.New().WithFailure("Orders.read", failErr)
	core2, logs2 := observer.New(zap.DebugLevel)
	s2 := newTestSource(t, tr2, WithDebug(), WithLogger(zap.New(core2)))

	_, err = s2.Read(context.Background(), "42", nil)
	assert.Equal(t, failErr, err)

	entries2 := logs2.All()
	require.Len(t, entries2, 1)
	assert.Equal(t, zap.ErrorLevel, entries2[0].Level)
}

func TestMergeAndMoveShapes(t *testing.T) {
	tr := mock.New().
		WithResult("Orders.merge", nil).
		WithResult("Orders.move", nil)
	s := newTestSource(t, tr)

	require.NoError(t, s.Merge(context.Background(), "1", "2"))
	require.NoError(t, s.Move(context.Background(), []any{"1"}, "9", map[string]any{"position": "after"}))

	calls := tr.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []any{"1", "2"}, calls[0].Args)
	assert.Equal(t, []any{[]any{"1"}, "9", map[string]any{"position": "after"}}, calls[1].Args)
}

func TestRPCCall(t *testing.T) {
	tr := mock.New().WithResult("Orders.Recalculate", map[string]any{"ok": true})
	p, err := provider.New(provider.Endpoint{Address: "http://svc", Contract: "Orders"},
		provider.WithTransport(tr))
	require.NoError(t, err)

	rpc := NewRPC(p)
	raw, err := rpc.Call(context.Background(), "Recalculate", map[string]any{"Id": "42"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, raw)

	calls := tr.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Orders.Recalculate", calls[0].Method)
}
