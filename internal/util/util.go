package util

import "os"

// SetEnv sets an environment variable and returns a function that restores the previous value
func SetEnv(key, value string) func() {
	prev, found := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		panic(err)
	}

	return func() {
		if !found {
			if err := os.Unsetenv(key); err != nil {
				panic(err)
			}

			return
		}

		if err := os.Setenv(key, prev); err != nil {
			panic(err)
		}
	}
}
