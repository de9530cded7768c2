// Package logger provides the console output layer using zerolog.
//
// It combines a plain-text console writer with a severity filter parsed
// from an expression like "warn,storage=debug": a default level floor plus
// per-target overrides, longest target prefix winning.
//
//	logger.SetGlobal(logger.New(os.Stderr, logger.ResolveFilter(cfg)))
//	logger.Info("application started")
package logger
