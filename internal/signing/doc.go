// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ian Katengeza

// Package signing decides, per build variant, which identity signs the
// packaged artifact.
//
// Release variants are signed with the operator's release credentials when
// all four credential fields are present. Without them the [Selector]
// either fails the build ([ModeStrict]) or falls back to the development
// identity with a warning ([ModePermissive]). Non-release variants always use
// the development identity. Resource shrinking and minification are only
// ever enabled for release-signed artifacts.
package signing
