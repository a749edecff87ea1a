//go:build !retainedverify

package assert

const buildVerify = false
