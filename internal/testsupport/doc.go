// Package testsupport provides shared test fixtures: config builders with
// per-test temp directories and an httptest fake of the manager API that
// records update requests.
package testsupport
