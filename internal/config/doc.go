// Package config provides configuration management for mploader.
//
// Settings are stored as TOML. A missing config file is fine; every
// key has a default taken from the embedded example config:
//
//	settings, err := config.Load("config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// An annotated starter file can be written out for editing:
//
//	err := config.WriteExample("config.toml")
package config
