//go:build retainedverify

package assert

const buildVerify = true
