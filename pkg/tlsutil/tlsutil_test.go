package tlsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateSelfSignedCert(t *testing.T) {
	dir := t.TempDir()

	if err := GenerateSelfSignedCert([]string{"localhost", "127.0.0.1"}, dir); err != nil {
		t.Fatalf("GenerateSelfSignedCert() error = %v", err)
	}

	for _, name := range []string{"ca.pem", "ca-key.pem", "server.pem", "server-key.pem"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s to exist: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestServerTLSConfig(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateSelfSignedCert([]string{"localhost"}, dir); err != nil {
		t.Fatalf("GenerateSelfSignedCert() error = %v", err)
	}

	creds, err := ServerTLSConfig(filepath.Join(dir, "server.pem"), filepath.Join(dir, "server-key.pem"))
	if err != nil {
		t.Fatalf("ServerTLSConfig() error = %v", err)
	}
	if creds.Info().SecurityProtocol != "tls" {
		t.Errorf("SecurityProtocol = %q, want %q", creds.Info().SecurityProtocol, "tls")
	}
}

func TestServerTLSConfig_MissingFiles(t *testing.T) {
	_, err := ServerTLSConfig("no-such-cert.pem", "no-such-key.pem")
	if err == nil {
		t.Fatal("ServerTLSConfig() expected error for missing files, got nil")
	}
}

func TestClientTLSConfig(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateSelfSignedCert([]string{"localhost"}, dir); err != nil {
		t.Fatalf("GenerateSelfSignedCert() error = %v", err)
	}

	creds, err := ClientTLSConfig(filepath.Join(dir, "ca.pem"), false)
	if err != nil {
		t.Fatalf("ClientTLSConfig() error = %v", err)
	}
	if creds.Info().SecurityProtocol != "tls" {
		t.Errorf("SecurityProtocol = %q, want %q", creds.Info().SecurityProtocol, "tls")
	}
}

func TestClientTLSConfig_NoCA(t *testing.T) {
	creds, err := ClientTLSConfig("", true)
	if err != nil {
		t.Fatalf("ClientTLSConfig() error = %v", err)
	}
	if creds == nil {
		t.Fatal("ClientTLSConfig() returned nil credentials")
	}
}

func TestClientTLSConfig_BadCAFile(t *testing.T) {
	_, err := ClientTLSConfig("no-such-ca.pem", false)
	if err == nil {
		t.Fatal("ClientTLSConfig() expected error for missing CA file, got nil")
	}

	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pem")
	if err := os.WriteFile(garbage, []byte("not a certificate"), 0o600); err != nil {
		t.Fatalf("write garbage file: %v", err)
	}
	_, err = ClientTLSConfig(garbage, false)
	if err == nil {
		t.Fatal("ClientTLSConfig() expected error for unparsable CA file, got nil")
	}
}
