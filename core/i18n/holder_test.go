package i18n_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lstrings/core/i18n"
)

func TestHolder(t *testing.T) {
	t.Parallel()

	en, err := i18n.NewStrings(i18n.NewComponent("en", map[string]string{
		"Chat.Title":       "Chats",
		"Chat.Greeting":    "Hello, %@",
		"Chat.Members_1":   "%d member",
		"Chat.Members_any": "%d members",
	}))
	require.NoError(t, err)
	de, err := i18n.NewStrings(i18n.NewComponent("de", map[string]string{
		"Chat.Title":       "Unterhaltungen",
		"Chat.Members_1":   "%d Mitglied",
		"Chat.Members_any": "%d Mitglieder",
		"Chat.Invite_any":  "%d Einladungen von %@",
	}))
	require.NoError(t, err)

	assert.Panics(t, func() { i18n.NewHolder(nil) })

	h := i18n.NewHolder(en)
	assert.Same(t, en, h.Load())
	assert.Equal(t, "Chats", h.Resolve("Chat.Title"))
	assert.Equal(t, "1,500 members", h.PluralString(1500, "Chat.Members"))
	assert.Equal(t, "Hello, Anna", h.Format("Chat.Greeting", "Anna").Text)

	h.Store(nil)
	assert.Same(t, en, h.Load())

	prev := h.Swap(de)
	assert.Same(t, en, prev)
	assert.Equal(t, "Unterhaltungen", h.Resolve("Chat.Title"))
	assert.Equal(t, "1.500 Mitglieder", h.PluralString(1500, "Chat.Members"))
	assert.Equal(t, "2 Einladungen von Anna", h.PluralFormatted(2, "Chat.Invite", "2", "Anna"))
	assert.Same(t, de, h.Swap(nil))
}

func TestHolderConcurrentSwap(t *testing.T) {
	t.Parallel()

	a, err := i18n.NewStrings(i18n.NewComponent("en", map[string]string{"Chat.Title": "A"}))
	require.NoError(t, err)
	b, err := i18n.NewStrings(i18n.NewComponent("en", map[string]string{"Chat.Title": "B"}))
	require.NoError(t, err)

	h := i18n.NewHolder(a)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				if i%2 == 0 {
					h.Store(b)
				} else {
					h.Store(a)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				v := h.Resolve("Chat.Title")
				assert.Contains(t, []string{"A", "B"}, v)
			}
		}()
	}
	wg.Wait()
}
