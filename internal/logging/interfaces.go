// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Error(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Debug(args ...interface{})
	Fatal(args ...interface{})
	Errorf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Debugf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits security events using the OWASP logging vocabulary.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthnLoginSuccess(userID string)
	AuthnLoginFail(identifier, reason string)
	AuthzFailure(userID, resource string)
	UserCreated(actorID, userID string)
	UserDeleted(actorID, userID string)
	VerificationFailure(reason string)
	VerificationSuccess(userID string)
}
