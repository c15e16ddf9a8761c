package auth

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryReplaceAndIsCurrent(t *testing.T) {
	reg := NewSessionRegistry()

	require.False(t, reg.IsCurrent("alice", "t1"))

	reg.Replace("alice", "t1")
	require.True(t, reg.IsCurrent("alice", "t1"))

	reg.Replace("alice", "t2")
	require.False(t, reg.IsCurrent("alice", "t1"))
	require.True(t, reg.IsCurrent("alice", "t2"))
}

func TestRegistryRemoveIfCurrent(t *testing.T) {
	reg := NewSessionRegistry()
	reg.Replace("alice", "t1")

	// A stale token must not tear down the live session.
	reg.RemoveIfCurrent("alice", "t0")
	require.True(t, reg.IsCurrent("alice", "t1"))

	reg.RemoveIfCurrent("alice", "t1")
	require.False(t, reg.IsCurrent("alice", "t1"))

	// Removing an absent entry is a no-op.
	reg.RemoveIfCurrent("alice", "t1")
	require.Equal(t, 0, reg.Len())
}

func TestRegistryIsolatesSubjects(t *testing.T) {
	reg := NewSessionRegistry()
	reg.Replace("alice", "ta")
	reg.Replace("bob", "tb")

	reg.RemoveIfCurrent("alice", "ta")
	require.False(t, reg.IsCurrent("alice", "ta"))
	require.True(t, reg.IsCurrent("bob", "tb"))
}

func TestRegistryConcurrentDistinctSubjects(t *testing.T) {
	reg := NewSessionRegistry()

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			subject := fmt.Sprintf("user-%d", i)
			token := fmt.Sprintf("token-%d", i)
			reg.Replace(subject, token)
			require.True(t, reg.IsCurrent(subject, token))
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, reg.Len())
}

func TestRegistryConcurrentSameSubjectLastWriterWins(t *testing.T) {
	reg := NewSessionRegistry()

	const n = 32
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	var wg sync.WaitGroup
	for _, token := range tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			reg.Replace("alice", token)
		}(token)
	}
	wg.Wait()

	// Exactly one of the written tokens is current; no torn entry.
	current := 0
	for _, token := range tokens {
		if reg.IsCurrent("alice", token) {
			current++
		}
	}
	require.Equal(t, 1, current)
}
