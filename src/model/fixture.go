package model

import "github.com/google/uuid"

// ----------------------------------------------------
// ================ Records ================
// Records are stored as JSON strings, field order is the order the
// authorization server reads them in.

// Realm is a named tenant grouping clients and users. Clients are kept
// empty here, relations live in separate list keys.
type Realm struct {
	Name                   string   `json:"name" yaml:"name"`
	TokenExpiration        int      `json:"token_expiration" yaml:"token_expiration"`
	RefreshTokenExpiration int      `json:"refresh_expiration" yaml:"refresh_expiration"`
	Clients                []Client `json:"clients" yaml:"clients"`
}

type ClientType string

const (
	Public       ClientType = "public"
	Confidential ClientType = "confidential"
)

type AuthenticationType int

const (
	ClientIdAndSecrets AuthenticationType = 1
)

// Authentication holds how a client proves itself, Value is the secret
type Authentication struct {
	Type  AuthenticationType `json:"type" yaml:"type"`
	Value string             `json:"value" yaml:"value"`
}

// Client is an application registered within a realm
type Client struct {
	ID   uuid.UUID      `json:"id" yaml:"id"`
	Name string         `json:"name" yaml:"name"`
	Type ClientType     `json:"type" yaml:"type"`
	Auth Authentication `json:"auth" yaml:"auth"`
}

// ExtendedIdentifier wires a realm to a client or user by id and name
type ExtendedIdentifier struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserInfo struct {
	Sub               uuid.UUID `json:"sub" yaml:"sub"`
	EmailVerified     bool      `json:"email_verified" yaml:"email_verified"`
	Roles             []string  `json:"roles" yaml:"roles"`
	Name              string    `json:"name" yaml:"name"`
	PreferredUsername string    `json:"preferred_username" yaml:"preferred_username"`
	GivenName         string    `json:"given_name" yaml:"given_name"`
	FamilyName        string    `json:"family_name" yaml:"family_name"`
}

type UserCredentials struct {
	Password string `json:"password" yaml:"password"`
}

// User is an account within a realm
type User struct {
	Info        UserInfo        `json:"info" yaml:"info"`
	Credentials UserCredentials `json:"credentials" yaml:"credentials"`
}

// ----------------------------------------------------
// ================ Fixture documents ================
// Key is the identifier used when building the store key, it is not
// always equal to the record name (realm "testapp" lives under testApp).

type ClientFixture struct {
	Key    string `yaml:"key"`
	Client Client `yaml:"client"`
}

type UserFixture struct {
	Key  string `yaml:"key"`
	User User   `yaml:"user"`
}

type RealmFixture struct {
	Key     string          `yaml:"key"`
	Realm   Realm           `yaml:"realm"`
	Clients []ClientFixture `yaml:"clients"`
	Users   []UserFixture   `yaml:"users"`
}

// FixtureSet is the full set of records written by one seeding run
type FixtureSet struct {
	Realms []RealmFixture `yaml:"realms"`
}

// Counts returns how many realms, clients and users the set holds
func (f *FixtureSet) Counts() (realms, clients, users int) {
	for _, r := range f.Realms {
		realms++
		clients += len(r.Clients)
		users += len(r.Users)
	}
	return realms, clients, users
}
