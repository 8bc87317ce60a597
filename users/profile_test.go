package users_test

import (
	"encoding/json"
	"testing"

	apperrors "github.com/jrsteele09/torneo-pingpong/internal/errors"
	"github.com/jrsteele09/torneo-pingpong/internal/utils"
	"github.com/jrsteele09/torneo-pingpong/users"
	"github.com/stretchr/testify/require"
)

func TestProfile_Apply(t *testing.T) {
	p := users.Profile{ID: "1", FirstName: "Mario", LastName: "Rossi", Email: "mario@example.com"}

	t.Run("merges set fields only", func(t *testing.T) {
		got := p.Apply(users.ProfileUpdate{Enrolled: utils.Ptr(true)})
		require.True(t, got.Enrolled)
		require.False(t, got.Organizer)
		require.Equal(t, "Mario", got.FirstName)
		require.Equal(t, "mario@example.com", got.Email)
		require.False(t, p.Enrolled, "receiver must not change")
	})

	t.Run("can clear a flag", func(t *testing.T) {
		organizer := p
		organizer.Organizer = true
		got := organizer.Apply(users.ProfileUpdate{Organizer: utils.Ptr(false)})
		require.False(t, got.Organizer)
	})

	t.Run("empty update", func(t *testing.T) {
		require.True(t, users.ProfileUpdate{}.Empty())
		require.False(t, users.ProfileUpdate{LastName: utils.Ptr("Bianchi")}.Empty())
		require.Equal(t, p, p.Apply(users.ProfileUpdate{}))
	})
}

func TestProfile_JSON(t *testing.T) {
	body := `{"id":12,"nome":"Giulia","cognome":"Verdi","email":"giulia@example.com","iscritto_al_torneo":true,"organizzatore_del_torneo":false}`

	var p users.Profile
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	require.Equal(t, users.ID("12"), p.ID)
	require.Equal(t, "Giulia Verdi", p.FullName())
	require.True(t, p.Enrolled)
	require.False(t, p.Organizer)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, body, string(out))

	var nilProfile *users.Profile
	require.Empty(t, nilProfile.FullName())
}

func TestID_JSON(t *testing.T) {
	cases := []struct {
		in   string
		want users.ID
	}{
		{`7`, "7"},
		{`"7"`, "7"},
		{`"abc"`, "abc"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var id users.ID
		require.NoError(t, json.Unmarshal([]byte(tc.in), &id), tc.in)
		require.Equal(t, tc.want, id)
	}

	var id users.ID
	require.Error(t, json.Unmarshal([]byte(`1.5`), &id))
	require.Error(t, json.Unmarshal([]byte(`true`), &id))

	out, err := json.Marshal(users.ID("7"))
	require.NoError(t, err)
	require.Equal(t, `7`, string(out))

	out, err = json.Marshal(users.ID("abc"))
	require.NoError(t, err)
	require.Equal(t, `"abc"`, string(out))

	for _, raw := range []users.ID{"007", "+7", "-0"} {
		out, err = json.Marshal(raw)
		require.NoError(t, err)
		require.Equal(t, `"`+string(raw)+`"`, string(out))

		var back users.ID
		require.NoError(t, json.Unmarshal(out, &back))
		require.Equal(t, raw, back)
	}

	n, err := users.ID("42").Int()
	require.NoError(t, err)
	require.Equal(t, int64(42), n)
}

func TestRegistration_Validate(t *testing.T) {
	valid := users.Registration{FirstName: "Mario", LastName: "Rossi", Email: "mario@example.com", Password: "secret"}
	require.NoError(t, valid.Validate())

	tests := map[string]func(r *users.Registration){
		"missing first name": func(r *users.Registration) { r.FirstName = " " },
		"missing last name":  func(r *users.Registration) { r.LastName = "" },
		"missing password":   func(r *users.Registration) { r.Password = "" },
		"missing email":      func(r *users.Registration) { r.Email = "" },
		"invalid email":      func(r *users.Registration) { r.Email = "mario" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			r := valid
			mutate(&r)
			require.ErrorIs(t, r.Validate(), apperrors.ErrInvalidRequest)
		})
	}
}

func TestCredentials_Validate(t *testing.T) {
	require.NoError(t, users.Credentials{Email: "a@example.com", Password: "x"}.Validate())
	require.ErrorIs(t, users.Credentials{Email: "a@example.com"}.Validate(), apperrors.ErrInvalidRequest)
	require.ErrorIs(t, users.Credentials{Password: "x"}.Validate(), apperrors.ErrInvalidRequest)
}
