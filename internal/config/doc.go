// Package config loads and validates p4ssw0rd CLI configuration.
//
// Values come from, in increasing precedence: built-in defaults, an
// optional config file (any format viper understands), and environment
// variables prefixed with P4SSW0RD_ ("calibrate.max_cost" becomes
// P4SSW0RD_CALIBRATE_MAX_COST).  The result is validated before use so an
// unusable cost is reported once at startup.
package config
