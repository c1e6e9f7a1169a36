package i18n

import "strings"

// Language is the response language negotiated from the Accept-Language header.
type Language string

const (
	Korean   Language = "ko"
	English  Language = "en"
	Japanese Language = "ja"
)

// Parse maps an Accept-Language header value to a supported language.
// Each listed tag is reduced to its primary subtag ("en-US;q=0.9" -> "en")
// and the first supported one wins, in header order. Korean is the default.
func Parse(header string) Language {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexAny(tag, "-;"); i >= 0 {
			tag = tag[:i]
		}
		switch strings.ToLower(tag) {
		case "ko":
			return Korean
		case "en":
			return English
		case "ja":
			return Japanese
		}
	}
	return Korean
}

var messages = map[Language]map[string]string{
	Korean: {
		"GLOBAL.INTERNAL_ERROR":         "서버 오류가 발생했습니다.",
		"GLOBAL.INVALID_REQUEST":        "잘못된 요청입니다.",
		"GLOBAL.UNAUTHORIZED":           "로그인이 필요합니다.",
		"AUTH.AUTHENTICATION_TOKEN_REQUIRED": "인증 토큰이 필요합니다.",
		"AUTH.INVALID_TOKEN_OR_USER_NOT_FOUND": "유효하지 않은 토큰이거나 사용자를 찾을 수 없습니다.",
		"AUTH.EMAIL_ALREADY_REGISTERED": "이미 등록된 이메일입니다.",
		"AUTH.USERNAME_ALREADY_TAKEN":   "이미 사용 중인 사용자 이름입니다.",
		"AUTH.INVALID_CREDENTIALS":      "이메일 또는 비밀번호가 올바르지 않습니다.",
		"USER.NOT_FOUND":                "사용자를 찾을 수 없습니다.",
		"PHOTO.NOT_FOUND":               "사진을 찾을 수 없습니다.",
		"PHOTO.IS_PRIVATE":              "비공개 사진입니다.",
		"PHOTO.NOT_OWNER":               "사진의 소유자가 아닙니다.",
		"PHOTO.INVALID_IMAGE":           "이미지 파일을 처리할 수 없습니다.",
		"SERIES.NOT_FOUND":              "시리즈를 찾을 수 없습니다.",
		"SERIES.IS_PRIVATE":             "비공개 시리즈입니다.",
		"SERIES.NOT_OWNER":              "시리즈의 소유자가 아닙니다.",
		"SERIES.PHOTO_NOT_IN_SERIES":    "시리즈에 포함되지 않은 사진입니다.",
		"SERIES.PHOTO_ALREADY_IN_SERIES": "이미 시리즈에 포함된 사진입니다.",
		"COLLECTION.NOT_FOUND":          "컬렉션을 찾을 수 없습니다.",
		"COLLECTION.NOT_OWNER":          "컬렉션의 소유자가 아닙니다.",
		"COLLECTION.CANNOT_DELETE_DEFAULT": "기본 컬렉션은 삭제할 수 없습니다.",
		"COMMENT.NOT_FOUND":             "댓글을 찾을 수 없습니다.",
		"COMMENT.NOT_OWNER":             "댓글의 작성자가 아닙니다.",
		"COMMENT.TARGET_REQUIRED":       "사진 또는 시리즈 중 하나를 지정해야 합니다.",
		"COMMENT.PARENT_NOT_FOUND":      "부모 댓글을 찾을 수 없습니다.",
		"COMMENT.PARENT_TARGET_MISMATCH": "부모 댓글이 이 리소스에 속하지 않습니다.",
		"LIKE.TARGET_REQUIRED":          "좋아요 대상을 하나만 지정해야 합니다.",
		"FOLLOW.CANNOT_FOLLOW_YOURSELF": "자기 자신을 팔로우할 수 없습니다.",
		"NOTIFICATION.IDS_REQUIRED":     "알림 ID 목록이 필요합니다.",
	},
	English: {
		"GLOBAL.INTERNAL_ERROR":         "Internal server error.",
		"GLOBAL.INVALID_REQUEST":        "Invalid request.",
		"GLOBAL.UNAUTHORIZED":           "Authentication required.",
		"AUTH.AUTHENTICATION_TOKEN_REQUIRED": "Authentication token required.",
		"AUTH.INVALID_TOKEN_OR_USER_NOT_FOUND": "Invalid token or user not found.",
		"AUTH.EMAIL_ALREADY_REGISTERED": "This email is already registered.",
		"AUTH.USERNAME_ALREADY_TAKEN":   "This username is already taken.",
		"AUTH.INVALID_CREDENTIALS":      "Incorrect email or password.",
		"USER.NOT_FOUND":                "User not found.",
		"PHOTO.NOT_FOUND":               "Photo not found.",
		"PHOTO.IS_PRIVATE":              "This photo is private.",
		"PHOTO.NOT_OWNER":               "You do not own this photo.",
		"PHOTO.INVALID_IMAGE":           "The image file could not be processed.",
		"SERIES.NOT_FOUND":              "Series not found.",
		"SERIES.IS_PRIVATE":             "This series is private.",
		"SERIES.NOT_OWNER":              "You do not own this series.",
		"SERIES.PHOTO_NOT_IN_SERIES":    "The photo is not part of this series.",
		"SERIES.PHOTO_ALREADY_IN_SERIES": "The photo is already part of this series.",
		"COLLECTION.NOT_FOUND":          "Collection not found.",
		"COLLECTION.NOT_OWNER":          "You do not own this collection.",
		"COLLECTION.CANNOT_DELETE_DEFAULT": "The default collection cannot be deleted.",
		"COMMENT.NOT_FOUND":             "Comment not found.",
		"COMMENT.NOT_OWNER":             "You are not the author of this comment.",
		"COMMENT.TARGET_REQUIRED":       "Exactly one of photo or series must be specified.",
		"COMMENT.PARENT_NOT_FOUND":      "Parent comment not found.",
		"COMMENT.PARENT_TARGET_MISMATCH": "The parent comment does not belong to this resource.",
		"LIKE.TARGET_REQUIRED":          "Exactly one like target must be specified.",
		"FOLLOW.CANNOT_FOLLOW_YOURSELF": "You cannot follow yourself.",
		"NOTIFICATION.IDS_REQUIRED":     "A list of notification IDs is required.",
	},
	Japanese: {
		"GLOBAL.INTERNAL_ERROR":         "サーバーエラーが発生しました。",
		"GLOBAL.INVALID_REQUEST":        "不正なリクエストです。",
		"GLOBAL.UNAUTHORIZED":           "ログインが必要です。",
		"AUTH.AUTHENTICATION_TOKEN_REQUIRED": "認証トークンが必要です。",
		"AUTH.INVALID_TOKEN_OR_USER_NOT_FOUND": "無効なトークンか、ユーザーが見つかりません。",
		"AUTH.EMAIL_ALREADY_REGISTERED": "このメールアドレスは既に登録されています。",
		"AUTH.USERNAME_ALREADY_TAKEN":   "このユーザー名は既に使用されています。",
		"AUTH.INVALID_CREDENTIALS":      "メールアドレスまたはパスワードが正しくありません。",
		"USER.NOT_FOUND":                "ユーザーが見つかりません。",
		"PHOTO.NOT_FOUND":               "写真が見つかりません。",
		"PHOTO.IS_PRIVATE":              "非公開の写真です。",
		"PHOTO.NOT_OWNER":               "写真の所有者ではありません。",
		"PHOTO.INVALID_IMAGE":           "画像ファイルを処理できません。",
		"SERIES.NOT_FOUND":              "シリーズが見つかりません。",
		"SERIES.IS_PRIVATE":             "非公開のシリーズです。",
		"SERIES.NOT_OWNER":              "シリーズの所有者ではありません。",
		"SERIES.PHOTO_NOT_IN_SERIES":    "シリーズに含まれていない写真です。",
		"SERIES.PHOTO_ALREADY_IN_SERIES": "既にシリーズに含まれている写真です。",
		"COLLECTION.NOT_FOUND":          "コレクションが見つかりません。",
		"COLLECTION.NOT_OWNER":          "コレクションの所有者ではありません。",
		"COLLECTION.CANNOT_DELETE_DEFAULT": "デフォルトのコレクションは削除できません。",
		"COMMENT.NOT_FOUND":             "コメントが見つかりません。",
		"COMMENT.NOT_OWNER":             "コメントの作成者ではありません。",
		"COMMENT.TARGET_REQUIRED":       "写真またはシリーズのどちらか一方を指定してください。",
		"COMMENT.PARENT_NOT_FOUND":      "親コメントが見つかりません。",
		"COMMENT.PARENT_TARGET_MISMATCH": "親コメントはこのリソースに属していません。",
		"LIKE.TARGET_REQUIRED":          "いいねの対象を一つだけ指定してください。",
		"FOLLOW.CANNOT_FOLLOW_YOURSELF": "自分自身をフォローすることはできません。",
		"NOTIFICATION.IDS_REQUIRED":     "通知IDのリストが必要です。",
	},
}

// Message resolves a message key for the given language, falling back to
// Korean and finally to the key itself.
func Message(key string, lang Language) string {
	if m, ok := messages[lang][key]; ok {
		return m
	}
	if m, ok := messages[Korean][key]; ok {
		return m
	}
	return key
}
