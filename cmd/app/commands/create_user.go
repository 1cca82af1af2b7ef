package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	userDomain "github.com/allisson/mediavault/internal/user/domain"
	userUseCase "github.com/allisson/mediavault/internal/user/usecase"
)

// RunCreateUser registers a user from the command line. When password is empty it is read
// from the input: with echo disabled when the input is a terminal, otherwise as the first line.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	name string,
	email string,
	password string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if password == "" {
		var err error
		password, err = readPassword(io.Reader)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	logger.Info("creating new user", slog.String("email", email))

	user, err := useCase.RegisterUser(ctx, userDomain.RegisterUserInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, map[string]string{
			"id":    user.ID.String(),
			"name":  user.Name,
			"email": user.Email,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(io.Writer, "User created successfully")
		_, _ = fmt.Fprintf(io.Writer, "ID: %s\n", user.ID)
		_, _ = fmt.Fprintf(io.Writer, "Name: %s\n", user.Name)
		_, _ = fmt.Fprintf(io.Writer, "Email: %s\n", user.Email)
	}

	logger.Info("user created successfully", slog.String("user_id", user.ID.String()))
	return nil
}

// readPassword reads a password from r. Terminals are prompted on stderr with echo disabled.
func readPassword(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(os.Stderr, "Password: ")
		passwordBytes, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(passwordBytes), nil
	}

	if r == nil {
		return "", errors.New("no input available for password (use --password)")
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}
