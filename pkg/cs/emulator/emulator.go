package emulator

import (
	"net"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/fsouza/fake-gcs-server/fakestorage"
)

// GetFreePort asks the kernel for a free open port that is ready to use.
func GetFreePort() (port int, err error) {
	var a *net.TCPAddr
	if a, err = net.ResolveTCPAddr("tcp", "localhost:0"); err == nil {
		var l *net.TCPListener
		if l, err = net.ListenTCP("tcp", a); err == nil {
			defer l.Close()
			return l.Addr().(*net.TCPAddr).Port, nil
		}
	}
	return
}

type Emulator struct {
	server *fakestorage.Server
}

func (e *Emulator) CreateBucket(name string) {
	e.server.CreateBucketWithOpts(fakestorage.CreateBucketOpts{
		Name: name,
	})
}

func (e *Emulator) Client() *storage.Client {
	return e.server.Client()
}

func (e *Emulator) Cleanup() {
	e.server.Stop()
}

func New(t *testing.T, initialObjects []fakestorage.Object) *Emulator {
	t.Helper()

	port, err := GetFreePort()
	if err != nil {
		t.Fatalf("getting free port: %v", err)
	}

	server, err := fakestorage.NewServerWithOptions(fakestorage.Options{
		InitialObjects: initialObjects,
		Scheme:         "http",
		Host:           "localhost",
		Port:           uint16(port),
	})
	if err != nil {
		t.Fatalf("creating fake storage server: %v", err)
	}

	return &Emulator{
		server: server,
	}
}
