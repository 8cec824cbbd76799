// Command remote dials a host over SSH, runs an already-installed
// chasebench binary there with the given flags, and streams its stdout and
// stderr back to the local terminal. It copies nothing and installs
// nothing; it is the "remote orchestration tool" kept outside the
// measurement core.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

func main() {
	host := flag.String("host", "", "user@host[:port] to run chasebench on")
	keyPath := flag.String("i", "", "path to a private key file")
	knownHostsPath := flag.String("known-hosts", "", "path to a known_hosts file; empty disables host key verification")
	remoteBin := flag.String("bin", "chasebench", "path to the remote chasebench binary")
	flag.Parse()

	remoteArgs := flag.Args()
	if *host == "" {
		log.Fatal("remote: -host is required, e.g. -host user@example.com")
	}

	user, addr := splitUserHost(*host)
	if !strings.Contains(addr, ":") {
		addr += ":22"
	}

	signer, err := loadSigner(*keyPath)
	if err != nil {
		log.Fatalf("remote: load key: %v", err)
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if *knownHostsPath != "" {
		cb, err := knownhosts.New(*knownHostsPath)
		if err != nil {
			log.Fatalf("remote: load known_hosts: %v", err)
		}
		hostKeyCallback = cb
	}

	config := &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         10 * time.Second,
	}

	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		log.Fatalf("remote: dial %s: %v", addr, err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		log.Fatalf("remote: new session: %v", err)
	}
	defer session.Close()

	session.Stdout = os.Stdout
	session.Stderr = os.Stderr

	cmd := fmt.Sprintf("%s %s", *remoteBin, strings.Join(remoteArgs, " "))
	if err := session.Run(cmd); err != nil {
		log.Fatalf("remote: run %q: %v", cmd, err)
	}
}

func splitUserHost(s string) (user, addr string) {
	if i := strings.IndexByte(s, '@'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return "root", s
}

func loadSigner(path string) (ssh.Signer, error) {
	if path == "" {
		return nil, fmt.Errorf("no private key path given")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ssh.ParsePrivateKey(b)
}
