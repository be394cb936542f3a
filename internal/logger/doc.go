// Package logger wraps zap with a global sugared console logger that writes
// to stdout, plus context helpers (ToContext/FromContext/WithName/WithKV) so
// every step of a run logs through the logger carried by its context.
package logger
