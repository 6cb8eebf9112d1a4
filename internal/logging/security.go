// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	securityLevel = "security"

	eventSysStartup           = "sys_startup"
	eventSysShutdown          = "sys_shutdown"
	eventAuthnLoginSuccess    = "authn_login_success"
	eventAuthnLoginFail       = "authn_login_fail"
	eventAuthzFail            = "authz_fail"
	eventUserCreated          = "user_created"
	eventUserDeleted          = "user_deleted"
	eventVerificationFail     = "authn_email_verification_fail"
	eventVerificationComplete = "authn_email_verification_success"
)

// SecurityLogger writes security relevant events with a stable "event" field
// so they can be filtered out of the application log stream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) emit(event, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", securityLevel),
		zap.String("event", event),
	)
	s.l.Info(description, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.emit(eventSysStartup, "service started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.emit(eventSysShutdown, "service shutting down")
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string) {
	s.emit(fmt.Sprintf("%s:%s", eventAuthnLoginSuccess, userID), "user logged in", zap.String("user_id", userID))
}

func (s *SecurityLogger) AuthnLoginFail(identifier, reason string) {
	s.emit(fmt.Sprintf("%s:%s", eventAuthnLoginFail, identifier), "login attempt failed", zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.emit(fmt.Sprintf("%s:%s,%s", eventAuthzFail, userID, resource), "access denied", zap.String("user_id", userID), zap.String("resource", resource))
}

func (s *SecurityLogger) UserCreated(actorID, userID string) {
	s.emit(fmt.Sprintf("%s:%s,%s", eventUserCreated, actorID, userID), "user created", zap.String("user_id", userID))
}

func (s *SecurityLogger) UserDeleted(actorID, userID string) {
	s.emit(fmt.Sprintf("%s:%s,%s", eventUserDeleted, actorID, userID), "user deleted", zap.String("user_id", userID))
}

func (s *SecurityLogger) VerificationFailure(reason string) {
	s.emit(eventVerificationFail, "email verification failed", zap.String("reason", reason))
}

func (s *SecurityLogger) VerificationSuccess(userID string) {
	s.emit(fmt.Sprintf("%s:%s", eventVerificationComplete, userID), "email verified", zap.String("user_id", userID))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.WithOptions(zap.AddCallerSkip(1))}
}
