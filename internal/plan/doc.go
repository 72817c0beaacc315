// Package plan reads zedc.yaml test plans. A plan names the Zowe CLI version
// to install, the VS Code binary to test with and the extension archives to
// install, so a test run can be repeated without retyping flags. Plans are
// validated against an embedded JSON schema before they are decoded.
package plan
