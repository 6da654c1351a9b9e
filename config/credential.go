package config

import (
	"os"
)

const DefaultCredential = "GROQ_API_KEY"

// Credential resolves the upstream API key. Value is called once per request
// and is never cached.
type Credential interface {
	Name() string
	Value() string
}

// EnvCredential reads the key from the named environment variable.
type EnvCredential string

func (c EnvCredential) Name() string {
	return string(c)
}

func (c EnvCredential) Value() string {
	return os.Getenv(string(c))
}

// StaticCredential is a fixed key, mostly useful in tests.
type StaticCredential struct {
	Key string
}

func (c StaticCredential) Name() string {
	return DefaultCredential
}

func (c StaticCredential) Value() string {
	return c.Key
}
