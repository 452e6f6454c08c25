package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func dupKeyErr(msg string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: msg}},
	}
}

func TestDuplicateKeyField(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "username index",
			err:  dupKeyErr(`E11000 duplicate key error collection: bookstore.users index: username_1 dup key: { username: "alice" }`),
			want: "username",
		},
		{
			name: "email index",
			err:  dupKeyErr(`E11000 duplicate key error collection: bookstore.users index: email_1 dup key: { email: "alice@example.com" }`),
			want: "email",
		},
		{
			// the colliding value contains the other field's name; the
			// blame must still land on the index that fired
			name: "email value containing username",
			err:  dupKeyErr(`E11000 duplicate key error collection: bookstore.users index: email_1 dup key: { email: "username@x.com" }`),
			want: "email",
		},
		{
			name: "unknown index",
			err:  dupKeyErr(`E11000 duplicate key error collection: bookstore.users index: legacy_login_1 dup key: { legacy_login: "alice" }`),
			want: "",
		},
		{
			name: "no index token",
			err:  dupKeyErr(`E11000 duplicate key error`),
			want: "",
		},
		{
			name: "not a duplicate key error",
			err:  errors.New("mongo: connection reset"),
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := duplicateKeyField(tc.err, "username", "email")
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
