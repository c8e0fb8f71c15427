package common

// SnapshotKey is the fixed key the persisted session snapshot is stored
// under in the local database. The name is kept in sync with the backend's
// web client so both read the same logical record.
const SnapshotKey = "marketplace_user"
