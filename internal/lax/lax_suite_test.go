package lax_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLax(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Lax Suite")
}
