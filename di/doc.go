// Package di provides small, explicit dependency wiring helpers for Go.
//
// It supports two styles that can be mixed in one composition root:
//
//   - Scoped providers: Singleton[T] and Transient[T] wrap a constructor and
//     decide how often it runs. A singleton constructs at most once (even
//     under concurrent callers) and hands the same pointer to every consumer.
//     A transient constructs on every Get.
//
//   - Registry: name-keyed providers tagged with a Scope, resolved at runtime
//     with typed errors (duplicate keys, missing dependencies, wrong types).
//     Best when you want a service locator that can be introspected in tests.
//
// Neither style uses reflection-based injection or automatic graph
// resolution. Wiring stays explicit in your composition root: a provider's
// dependencies are whatever its constructor closes over.
//
// Construction errors are never wrapped: whatever the constructor returns is
// what the caller of Get / Resolve sees.
//
// Import
//
//	"github.com/x4fyr/paiman/di"
package di
