package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chizihn/glubon-admin/internal/config"
	cacheAdapter "github.com/Chizihn/glubon-admin/internal/infrastructure/cache/adapter"
)

func TestRootHasSubcommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "worker"}, names)
}

func TestMemoryCacheWithoutRedis(t *testing.T) {
	c, err := openCache(context.Background(), config.Config{})
	require.NoError(t, err)
	assert.IsType(t, &cacheAdapter.MemoryCache{}, c)
}

func TestAuditDisabledWithoutDB(t *testing.T) {
	repo, closeDB, err := openAudit(context.Background(), config.Config{})
	require.NoError(t, err)
	assert.Nil(t, repo)
	closeDB()
}

func TestWorkerNeedsRedis(t *testing.T) {
	assert.Error(t, work(context.Background(), config.Config{}))
}
