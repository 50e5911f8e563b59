// Package environment names the deployment stages and parses the APP_ENV
// style values found in configuration.
package environment
