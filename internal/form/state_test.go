package form_test

import (
	"testing"

	"github.com/serroba/link-form/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticCode(code string) func() string {
	return func() string { return code }
}

func filled(t *testing.T, rows int) form.State {
	t.Helper()

	s := form.New()
	for range rows - 1 {
		s = s.AddRow()
	}

	for i := range rows {
		var err error

		s, err = s.EditField(i, form.FieldLongURL, "https://example.com/"+string(rune('a'+i)))
		require.NoError(t, err)
	}

	return s
}

func TestNew(t *testing.T) {
	s := form.New()

	require.Len(t, s.Entries, 1)
	assert.Equal(t, form.Entry{}, s.Entries[0])
	assert.False(t, s.ModalOpen)
	assert.Nil(t, s.ActiveLink)

	_, copied := s.Copied()
	assert.False(t, copied)
}

func TestState_EditField(t *testing.T) {
	t.Run("only touches the edited row", func(t *testing.T) {
		before := filled(t, 3)

		after, err := before.EditField(1, form.FieldCustomCode, "mine")

		require.NoError(t, err)
		assert.Equal(t, before.Entries[0], after.Entries[0])
		assert.Equal(t, before.Entries[2], after.Entries[2])
		assert.Equal(t, "mine", after.Entries[1].CustomCode)
		assert.Equal(t, before.Entries[1].LongURL, after.Entries[1].LongURL)
	})

	t.Run("leaves the previous snapshot unchanged", func(t *testing.T) {
		before := form.New()

		after, err := before.EditField(0, form.FieldPassword, "secret")

		require.NoError(t, err)
		assert.Empty(t, before.Entries[0].Password)
		assert.Equal(t, "secret", after.Entries[0].Password)
	})

	t.Run("edits every field", func(t *testing.T) {
		s := form.New()
		s, _ = s.EditField(0, form.FieldLongURL, "https://example.com")
		s, _ = s.EditField(0, form.FieldCustomCode, "abc")
		s, _ = s.EditField(0, form.FieldValidityMinutes, "5")
		s, _ = s.EditField(0, form.FieldPassword, "pw")

		assert.Equal(t, form.Entry{
			LongURL:         "https://example.com",
			CustomCode:      "abc",
			ValidityMinutes: "5",
			Password:        "pw",
		}, s.Entries[0])
	})

	t.Run("rejects out of range indices", func(t *testing.T) {
		s := form.New()

		for _, index := range []int{-1, 1, 10} {
			after, err := s.EditField(index, form.FieldLongURL, "x")

			require.ErrorIs(t, err, form.ErrIndexOutOfRange)
			assert.Equal(t, s, after)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := form.New().EditField(0, form.Field("shortUrl"), "x")

		assert.ErrorIs(t, err, form.ErrUnknownField)
	})
}

func TestState_AddRow(t *testing.T) {
	t.Run("appends a blank entry", func(t *testing.T) {
		s := form.New().AddRow()

		require.Len(t, s.Entries, 2)
		assert.Equal(t, form.Entry{}, s.Entries[1])
	})

	t.Run("never grows beyond the limit", func(t *testing.T) {
		s := form.New()
		for range 25 {
			s = s.AddRow()
		}

		assert.Len(t, s.Entries, form.MaxEntries)
		assert.False(t, s.CanAddRow())
	})

	t.Run("does not alias the previous snapshot", func(t *testing.T) {
		before := form.New()
		after := before.AddRow()

		after, _ = after.EditField(0, form.FieldLongURL, "https://example.com")

		assert.Empty(t, before.Entries[0].LongURL)
		assert.Len(t, before.Entries, 1)
	})
}

func TestState_SubmitAll(t *testing.T) {
	t.Run("skips entries without a long URL", func(t *testing.T) {
		s := form.New()
		s, _ = s.EditField(0, form.FieldCustomCode, "abc")
		s, _ = s.EditField(0, form.FieldValidityMinutes, "junk")
		s, _ = s.EditField(0, form.FieldLongURL, "   ")

		after := s.SubmitAll(staticCode("gen"), form.DefaultBaseDomain)

		assert.Equal(t, s.Entries[0], after.Entries[0])
		assert.Empty(t, after.Entries[0].ShortURL)
	})

	t.Run("uses the custom code and parsed validity", func(t *testing.T) {
		s := form.New()
		s, _ = s.EditField(0, form.FieldLongURL, "https://example.com")
		s, _ = s.EditField(0, form.FieldCustomCode, "abc")
		s, _ = s.EditField(0, form.FieldValidityMinutes, "5")

		after := s.SubmitAll(staticCode("gen"), form.DefaultBaseDomain)

		assert.Equal(t, "https://sho.rt/abc", after.Entries[0].ShortURL)
		assert.Equal(t, "5", after.Entries[0].ValidityMinutes)
	})

	t.Run("generates a slug and defaults invalid validity", func(t *testing.T) {
		s := form.New()
		s, _ = s.EditField(0, form.FieldLongURL, "https://example.com")
		s, _ = s.EditField(0, form.FieldValidityMinutes, "not-a-number")

		after := s.SubmitAll(staticCode("k3j9xq"), form.DefaultBaseDomain)

		assert.Equal(t, "https://sho.rt/k3j9xq", after.Entries[0].ShortURL)
		assert.Equal(t, "30", after.Entries[0].ValidityMinutes)
	})

	t.Run("treats a blank custom code as absent but keeps others verbatim", func(t *testing.T) {
		s := filled(t, 2)
		s, _ = s.EditField(0, form.FieldCustomCode, "  ")
		s, _ = s.EditField(1, form.FieldCustomCode, " x ")

		after := s.SubmitAll(staticCode("gen"), "https://sho.rt/")

		assert.Equal(t, "https://sho.rt/gen", after.Entries[0].ShortURL)
		assert.Equal(t, "https://sho.rt/ x ", after.Entries[1].ShortURL)
	})

	t.Run("preserves passwords", func(t *testing.T) {
		s := form.New()
		s, _ = s.EditField(0, form.FieldLongURL, "https://example.com")
		s, _ = s.EditField(0, form.FieldPassword, "secret")

		after := s.SubmitAll(staticCode("gen"), form.DefaultBaseDomain)

		assert.Equal(t, "secret", after.Entries[0].Password)
	})

	t.Run("replaces the entry list without mutating the old one", func(t *testing.T) {
		s := filled(t, 2)

		after := s.SubmitAll(staticCode("gen"), form.DefaultBaseDomain)

		assert.Empty(t, s.Entries[0].ShortURL)
		assert.NotEmpty(t, after.Entries[0].ShortURL)
	})
}

func TestEffectiveValidity(t *testing.T) {
	cases := map[string]string{
		"":       "30",
		"   ":    "30",
		"abc":    "30",
		"NaN":    "30",
		"Inf":    "30",
		"5":      "5",
		" 12 ":   "12",
		"0":      "0",
		"2.5":    "2.5",
		"1e2":    "100",
		"-3":     "-3",
		"5 mins": "30",
	}

	for raw, want := range cases {
		assert.Equal(t, want, form.EffectiveValidity(raw), "raw %q", raw)
	}
}

func shortened(t *testing.T, password string) form.State {
	t.Helper()

	s := form.New()
	s, _ = s.EditField(0, form.FieldLongURL, "https://example.com")
	s, _ = s.EditField(0, form.FieldPassword, password)

	return s.SubmitAll(staticCode("abc"), form.DefaultBaseDomain)
}

func TestState_ActivateLink(t *testing.T) {
	t.Run("opens unprotected links immediately", func(t *testing.T) {
		s := shortened(t, "")

		after, effects, err := s.ActivateLink(0)

		require.NoError(t, err)
		assert.Equal(t, []form.Effect{form.OpenURL("https://example.com")}, effects)
		assert.False(t, after.ModalOpen)
		assert.Nil(t, after.ActiveLink)
	})

	t.Run("gates protected links behind the modal", func(t *testing.T) {
		s := shortened(t, "secret")

		after, effects, err := s.ActivateLink(0)

		require.NoError(t, err)
		assert.Empty(t, effects)
		assert.True(t, after.ModalOpen)
		require.NotNil(t, after.ActiveLink)
		assert.Equal(t, s.Entries[0], *after.ActiveLink)
	})

	t.Run("rejects rows without a short link", func(t *testing.T) {
		_, _, err := form.New().ActivateLink(0)

		assert.ErrorIs(t, err, form.ErrNotShortened)
	})

	t.Run("rejects out of range rows", func(t *testing.T) {
		_, _, err := form.New().ActivateLink(3)

		assert.ErrorIs(t, err, form.ErrIndexOutOfRange)
	})
}

func TestState_Verify(t *testing.T) {
	t.Run("opens the link and closes the gate on a match", func(t *testing.T) {
		s, _, _ := shortened(t, "secret").ActivateLink(0)

		after, effects := s.Verify("secret")

		assert.Equal(t, []form.Effect{form.OpenURL("https://example.com")}, effects)
		assert.False(t, after.ModalOpen)
		assert.Nil(t, after.ActiveLink)
	})

	t.Run("alerts and keeps the gate open on a mismatch", func(t *testing.T) {
		s, _, _ := shortened(t, "secret").ActivateLink(0)

		after, effects := s.Verify("wrong")

		assert.Equal(t, []form.Effect{form.Alert(form.WrongPasswordMessage)}, effects)
		assert.Equal(t, s, after)
	})

	t.Run("allows retrying indefinitely", func(t *testing.T) {
		s, _, _ := shortened(t, "secret").ActivateLink(0)

		for range 20 {
			s, _ = s.Verify("nope")
		}

		after, effects := s.Verify("secret")

		assert.Equal(t, form.EffectOpen, effects[0].Kind)
		assert.False(t, after.ModalOpen)
	})

	t.Run("does nothing without an active link", func(t *testing.T) {
		s := form.New()

		after, effects := s.Verify("anything")

		assert.Empty(t, effects)
		assert.Equal(t, s, after)
	})
}

func TestState_Modal(t *testing.T) {
	t.Run("submits the typed password", func(t *testing.T) {
		s, _, _ := shortened(t, "secret").ActivateLink(0)
		s = s.InputPassword("secret")

		after, effects := s.SubmitPassword()

		require.Len(t, effects, 1)
		assert.Equal(t, form.EffectOpen, effects[0].Kind)
		assert.False(t, after.ModalOpen)
	})

	t.Run("cancel clears the active link and keeps typed text", func(t *testing.T) {
		s, _, _ := shortened(t, "secret").ActivateLink(0)
		s = s.InputPassword("half")

		after := s.CancelModal()

		assert.False(t, after.ModalOpen)
		assert.Nil(t, after.ActiveLink)
		assert.Equal(t, "half", after.Modal.Password)
	})
}

func TestState_Copy(t *testing.T) {
	t.Run("requests a clipboard write of the short link", func(t *testing.T) {
		effect, err := shortened(t, "").RequestCopy(0)

		require.NoError(t, err)
		assert.Equal(t, form.EffectClipboard, effect.Kind)
		assert.Equal(t, "https://sho.rt/abc", effect.Text)
	})

	t.Run("rejects rows without a short link", func(t *testing.T) {
		_, err := form.New().RequestCopy(0)

		assert.ErrorIs(t, err, form.ErrNotShortened)
	})

	t.Run("shows the indicator and schedules its clearing", func(t *testing.T) {
		s, effects, err := shortened(t, "").CopySucceeded(0)

		require.NoError(t, err)

		index, ok := s.Copied()
		assert.True(t, ok)
		assert.Equal(t, 0, index)
		require.Len(t, effects, 1)
		assert.Equal(t, form.EffectScheduleClear, effects[0].Kind)
		assert.Equal(t, form.CopiedIndicatorWindow, effects[0].After)
		assert.Equal(t, s.CopyGeneration, effects[0].Generation)
	})

	t.Run("clears the indicator for the matching generation", func(t *testing.T) {
		s, effects, _ := shortened(t, "").CopySucceeded(0)

		s = s.ClearCopied(effects[0].Generation)

		_, ok := s.Copied()
		assert.False(t, ok)
	})

	t.Run("a stale clear leaves a newer indicator visible", func(t *testing.T) {
		s := filled(t, 2).SubmitAll(staticCode("abc"), form.DefaultBaseDomain)

		s, first, _ := s.CopySucceeded(0)
		s, _, _ = s.CopySucceeded(1)
		s = s.ClearCopied(first[0].Generation)

		index, ok := s.Copied()
		assert.True(t, ok)
		assert.Equal(t, 1, index)
	})
}
