package viewmodels

type Profile struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Location  *string `json:"location"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type Department struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Role struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Location struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type UserDepartment struct {
	PairingID    string `json:"pairing_id"`
	UserID       string `json:"user_id"`
	DepartmentID string `json:"department_id"`
	IsPrimary    bool   `json:"is_primary"`
}

type UserRole struct {
	UserID    string `json:"user_id"`
	RoleID    string `json:"role_id"`
	IsPrimary bool   `json:"is_primary"`
}

type LearningTrack struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type Assignment struct {
	UserID     string `json:"user_id"`
	TrackID    string `json:"track_id"`
	AssignedAt string `json:"assigned_at"`
	Status     string `json:"status"`
}

type Progress struct {
	UserID      string  `json:"user_id"`
	TrackID     string  `json:"track_id"`
	StartedAt   *string `json:"started_at"`
	CompletedAt *string `json:"completed_at"`
}

type Certificate struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	IssuedAt  string  `json:"issued_at"`
	ExpiresAt *string `json:"expires_at"`
}

type Asset struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	Name       string  `json:"name"`
	Serial     string  `json:"serial"`
	AssignedTo *string `json:"assigned_to"`
	AssignedAt *string `json:"assigned_at"`
}

// DrillDownLevel is one node of the hierarchy as seen over the wire. Members
// are omitted on intermediate levels to keep responses small.
type DrillDownLevel struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Type  string `json:"type"`
	Value int    `json:"value"`
}

type StaffRow struct {
	Profile    Profile `json:"profile"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	Location   string  `json:"location"`
	Status     string  `json:"status"`
}
