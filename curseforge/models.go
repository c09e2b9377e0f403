// Package curseforge is a typed client for the CurseForge Core API.
//
// Every model mirrors the upstream JSON schema: camelCase field names,
// integer-encoded enumerations and tolerance for nullable fields. Values are
// produced by decoding a response body and are not mutated afterwards.
package curseforge

import "time"

type Pagination struct {
	Index       int `json:"index"`
	PageSize    int `json:"pageSize"`
	ResultCount int `json:"resultCount"`
	TotalCount  int `json:"totalCount"`
}

type CoreStatus int

const (
	CoreStatusDraft         CoreStatus = 1
	CoreStatusTest          CoreStatus = 2
	CoreStatusPendingReview CoreStatus = 3
	CoreStatusRejected      CoreStatus = 4
	CoreStatusApproved      CoreStatus = 5
	CoreStatusLive          CoreStatus = 6
)

type CoreApiStatus int

const (
	CoreApiStatusPrivate CoreApiStatus = 1
	CoreApiStatusPublic  CoreApiStatus = 2
)

type Game struct {
	Id           int        `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	DateModified time.Time  `json:"dateModified"`
	Assets       GameAssets `json:"assets"`
	Status       CoreStatus `json:"status"`
	// ApiStatus reports whether the game is queryable through the public API.
	ApiStatus CoreApiStatus `json:"apiStatus"`
}

// GameAssets holds decoration URLs. The API returns null for missing assets,
// which decodes to an empty string.
type GameAssets struct {
	IconUrl  string `json:"iconUrl"`
	TileUrl  string `json:"tileUrl"`
	CoverUrl string `json:"coverUrl"`
}

// GameVersionsByType groups version strings under a version type id. The
// upstream field is named "type".
type GameVersionsByType struct {
	Type     int      `json:"type"`
	Versions []string `json:"versions"`
}

type GameVersionType struct {
	Id     int    `json:"id"`
	GameId int    `json:"gameId"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
}

type Category struct {
	Id               int       `json:"id"`
	GameId           int       `json:"gameId"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Url              string    `json:"url"`
	IconUrl          string    `json:"iconUrl"`
	DateModified     time.Time `json:"dateModified"`
	IsClass          bool      `json:"isClass"`
	ClassId          int       `json:"classId"`
	ParentCategoryId int       `json:"parentCategoryId"`
	DisplayIndex     int       `json:"displayIndex"`
}

type ModLinks struct {
	WebsiteUrl string `json:"websiteUrl"`
	WikiUrl    string `json:"wikiUrl"`
	IssuesUrl  string `json:"issuesUrl"`
	SourceUrl  string `json:"sourceUrl"`
}

type ModStatus int

const (
	ModStatusNew             ModStatus = 1
	ModStatusChangesRequired ModStatus = 2
	ModStatusUnderSoftReview ModStatus = 3
	ModStatusApproved        ModStatus = 4
	ModStatusRejected        ModStatus = 5
	ModStatusChangesMade     ModStatus = 6
	ModStatusInactive        ModStatus = 7
	ModStatusAbandoned       ModStatus = 8
	ModStatusDeleted         ModStatus = 9
	ModStatusUnderReview     ModStatus = 10
)

type ModAuthor struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Url  string `json:"url"`
}

type ModAsset struct {
	Id           int    `json:"id"`
	ModId        int    `json:"modId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailUrl string `json:"thumbnailUrl"`
	Url          string `json:"url"`
}

type Mod struct {
	Id                   int         `json:"id"`
	GameId               int         `json:"gameId"`
	Name                 string      `json:"name"`
	Slug                 string      `json:"slug"`
	Links                ModLinks    `json:"links"`
	Summary              string      `json:"summary"`
	Status               ModStatus   `json:"status"`
	DownloadCount        int64       `json:"downloadCount"`
	IsFeatured           bool        `json:"isFeatured"`
	PrimaryCategoryId    int         `json:"primaryCategoryId"`
	Categories           []Category  `json:"categories"`
	ClassId              int         `json:"classId"`
	Authors              []ModAuthor `json:"authors"`
	Logo                 *ModAsset   `json:"logo"`
	Screenshots          []ModAsset  `json:"screenshots"`
	MainFileId           int         `json:"mainFileId"`
	LatestFiles          []File      `json:"latestFiles"`
	LatestFilesIndexes   []FileIndex `json:"latestFilesIndexes"`
	DateCreated          time.Time   `json:"dateCreated"`
	DateModified         time.Time   `json:"dateModified"`
	DateReleased         time.Time   `json:"dateReleased"`
	AllowModDistribution *bool       `json:"allowModDistribution"`
	GamePopularityRank   int         `json:"gamePopularityRank"`
	IsAvailable          bool        `json:"isAvailable"`
	ThumbsUpCount        int         `json:"thumbsUpCount"`
}

// FeaturedMods is the payload of the featured mods endpoint.
type FeaturedMods struct {
	Featured        []Mod `json:"featured"`
	Popular         []Mod `json:"popular"`
	RecentlyUpdated []Mod `json:"recentlyUpdated"`
}

type FileReleaseType int

const (
	Release FileReleaseType = 1
	Beta    FileReleaseType = 2
	Alpha   FileReleaseType = 3
)

type FileStatus int

const (
	Processing         FileStatus = 1
	ChangesRequired    FileStatus = 2
	UnderReview        FileStatus = 3
	Approved           FileStatus = 4
	Rejected           FileStatus = 5
	MalwareDetected    FileStatus = 6
	Deleted            FileStatus = 7
	Archived           FileStatus = 8
	Testing            FileStatus = 9
	Released           FileStatus = 10
	ReadyForReview     FileStatus = 11
	Deprecated         FileStatus = 12
	Baking             FileStatus = 13
	AwaitingPublishing FileStatus = 14
	FailedPublishing   FileStatus = 15
)

type FileHashAlgorithm int

const (
	SHA1 FileHashAlgorithm = 1
	MD5  FileHashAlgorithm = 2
)

type FileHash struct {
	Algorithm FileHashAlgorithm `json:"algo"`
	Hash      string            `json:"value"`
}

type FileRelationType int

const (
	EmbeddedLibrary    FileRelationType = 1
	OptionalDependency FileRelationType = 2
	RequiredDependency FileRelationType = 3
	Tool               FileRelationType = 4
	Incompatible       FileRelationType = 5
	Include            FileRelationType = 6
)

type FileDependency struct {
	ModId        int              `json:"modId"`
	RelationType FileRelationType `json:"relationType"`
}

type SortableGameVersion struct {
	GameVersionName        string    `json:"gameVersionName"`
	GameVersion            string    `json:"gameVersion"`
	GameVersionPadded      string    `json:"gameVersionPadded"`
	GameVersionReleaseDate time.Time `json:"gameVersionReleaseDate"`
	GameVersionTypeId      int       `json:"gameVersionTypeId"`
}

// FileModule pairs an archive member with its fingerprint.
type FileModule struct {
	Name        string `json:"name"`
	Fingerprint int64  `json:"fingerprint"`
}

type File struct {
	Id                   int                   `json:"id"`
	GameId               int                   `json:"gameId"`
	ModId                int                   `json:"modId"`
	IsAvailable          bool                  `json:"isAvailable"`
	DisplayName          string                `json:"displayName"`
	FileName             string                `json:"fileName"`
	ReleaseType          FileReleaseType       `json:"releaseType"`
	FileStatus           FileStatus            `json:"fileStatus"`
	Hashes               []FileHash            `json:"hashes"`
	FileDate             time.Time             `json:"fileDate"`
	FileLength           int64                 `json:"fileLength"`
	DownloadCount        int64                 `json:"downloadCount"`
	FileSizeOnDisk       int64                 `json:"fileSizeOnDisk"`
	DownloadUrl          string                `json:"downloadUrl"`
	GameVersions         []string              `json:"gameVersions"`
	SortableGameVersions []SortableGameVersion `json:"sortableGameVersions"`
	Dependencies         []FileDependency      `json:"dependencies"`
	ExposeAsAlternative  bool                  `json:"exposeAsAlternative"`
	ParentProjectFileId  int                   `json:"parentProjectFileId"`
	AlternateFileId      int                   `json:"alternateFileId"`
	IsServerPack         bool                  `json:"isServerPack"`
	ServerPackFileId     int                   `json:"serverPackFileId"`
	FileFingerprint      int64                 `json:"fileFingerprint"`
	Modules              []FileModule          `json:"modules"`
}

type FileIndex struct {
	GameVersion       string          `json:"gameVersion"`
	FileId            int             `json:"fileId"`
	Filename          string          `json:"filename"`
	ReleaseType       FileReleaseType `json:"releaseType"`
	GameVersionTypeId int             `json:"gameVersionTypeId"`
	ModLoader         ModLoaderType   `json:"modLoader"`
}

type ModLoaderType int

const (
	Any        ModLoaderType = 0
	Forge      ModLoaderType = 1
	Cauldron   ModLoaderType = 2
	LiteLoader ModLoaderType = 3
	Fabric     ModLoaderType = 4
	Quilt      ModLoaderType = 5
	NeoForge   ModLoaderType = 6
)

type GameId int

const (
	Minecraft GameId = 432
)

// FingerprintResult is the normalized outcome of a fingerprint match lookup.
// See fingerprints.go for the tolerant decoding of the upstream payload.
type FingerprintResult struct {
	Matches   []File `json:"matches"`
	Unmatched []int  `json:"unmatched"`
}
