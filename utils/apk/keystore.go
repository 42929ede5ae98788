package apk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/droidpack-tool/droidpack/utils/proc"
)

// Fixed debug signing identity. Well-known on purpose: packages signed
// with it install on any developer device and are rejected by stores.
const (
	keystoreFile   = "debug.keystore"
	debugKeyAlias  = "androiddebugkey"
	debugStorePass = "android"
	debugKeyPass   = "android"
	debugDName     = "CN=Android Debug,O=Android,C=US"
)

// Keystore provisions the debug signing credential at its fixed
// user-scoped path. Existence of the file is the only check; the
// credential is created once per machine and reused by every build.
type Keystore struct {
	runner proc.Runner

	// Dir overrides the user-scoped location, tests only.
	Dir string
}

func NewKeystore(runner proc.Runner) *Keystore {
	return &Keystore{runner: runner}
}

func (k *Keystore) path() (string, error) {
	if k.Dir != "" {
		return filepath.Join(k.Dir, keystoreFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".droidpack", keystoreFile), nil
}

// Ensure returns the keystore path, generating the credential first if
// the file does not exist yet. A failing generation is fatal, signing
// cannot proceed and regenerating behind the user's back would silently
// change the package fingerprint.
func (k *Keystore) Ensure(ctx context.Context) (string, error) {
	keystore, err := k.path()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(keystore); err == nil {
		logrus.Debugf("the %s file already exists, skipping", keystoreFile)
		return keystore, nil
	}
	if err := os.MkdirAll(filepath.Dir(keystore), 0o755); err != nil {
		return "", err
	}

	code, err := k.runner.Run(ctx, "generateDebugKey", proc.Options{}, "keytool",
		"-genkey", "-v", "-keystore", keystore,
		"-storepass", debugStorePass,
		"-alias", debugKeyAlias,
		"-keypass", debugKeyPass,
		"-keyalg", "RSA", "-keysize", "2048",
		"-validity", "10000",
		"-dname", debugDName,
		"-noprompt")
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", fmt.Errorf("fatal: can not create a keystore at %s", keystore)
	}
	logrus.Debugf("done creating %s", keystoreFile)
	return keystore, nil
}
