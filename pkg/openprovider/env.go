package openprovider

import (
	"fmt"
	"os"
	"strings"

	"github.com/lagowski/go-openprovider/pkg/apierror"
)

const envPrefix = "OPENPROVIDER_"

// getenv looks up OPENPROVIDER_[ACCOUNT_]KEY. The error names the
// missing field and account so misconfigured environments read clearly.
func getenv(key, account string) (string, error) {
	envKey := envPrefix
	if account != "" {
		envKey += strings.ToUpper(account) + "_"
	}
	envKey += strings.ToUpper(key)

	v, ok := os.LookupEnv(envKey)
	if !ok {
		msg := "missing openprovider " + key
		if account != "" {
			msg += " for account " + account
		}
		return "", fmt.Errorf("%w: %s", apierror.ErrConfiguration, msg)
	}
	return v, nil
}

// FromEnv builds a client from environment variables. With an empty
// account the plain convention applies:
//
//	OPENPROVIDER_USERNAME
//	OPENPROVIDER_PASSWORD_HASH   preferred over the plaintext password
//	OPENPROVIDER_PASSWORD
//	OPENPROVIDER_URL             optional, defaults to production
//
// A non-empty account is spliced in as an infix, so account "acme" reads
// OPENPROVIDER_ACME_USERNAME and so on. Additional options are applied
// after the environment-derived ones and may override them.
func FromEnv(account string, opts ...Option) (*Client, error) {
	username, err := getenv("username", account)
	if err != nil {
		return nil, err
	}

	var auth Option
	if hash, hashErr := getenv("password_hash", account); hashErr == nil {
		auth = WithPasswordHash(hash)
	} else {
		password, passErr := getenv("password", account)
		if passErr != nil {
			return nil, passErr
		}
		auth = WithPassword(password)
	}

	all := []Option{auth}
	if url, ok := os.LookupEnv(envPrefix + "URL"); ok {
		all = append(all, WithURL(url))
	}
	all = append(all, opts...)

	return New(username, all...)
}
