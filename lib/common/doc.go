// Package common provides the configuration and logging pieces shared by all
// kvprobe packages.
//
// Key Components:
//
//   - ClientConfig: Connection parameters of the remote store (host, port,
//     password, timeouts) and the retry policy of the connect loop. Values come
//     from STORE_* environment variables (optionally via .env files) and can be
//     overridden field by field with Override.
//
//   - Logger: Custom logging implementation of dragonboat's logger.ILogger with
//     a consistent "LEVEL | name | message" format. Components receive their
//     logger as a parameter; InitLoggers configures the shared factory once.
package common
