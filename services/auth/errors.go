package auth

import "errors"

var (
	// ErrOTPNotFound means no outstanding code exists for the email.
	ErrOTPNotFound = errors.New("no OTP found, request a new OTP")
	// ErrOTPExpired means the code existed but its window has passed.
	ErrOTPExpired = errors.New("OTP expired, request a new one")
	// ErrOTPInvalid means the submitted code does not match.
	ErrOTPInvalid = errors.New("invalid OTP")

	// ErrEmailNotVerified blocks signup before the OTP gate has passed.
	ErrEmailNotVerified = errors.New("email not verified")
	// ErrUsernameTaken and ErrEmailTaken report unique-field conflicts at signup.
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
