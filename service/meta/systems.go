/*
 * @module service/meta/systems
 * @description 시스템/모듈 카탈로그 정의, 요청 분류와 양식 프리필의 기준 데이터
 * @architecture 상수 계층 - 정적 참조 데이터
 * @documentReference dev_docs/requirements.md
 * @stateFlow 기동 시 1회 로드 -> 분석/검증 로직에서 읽기 전용 사용
 * @rules 시스템 카탈로그는 읽기 전용, 변경은 코드 배포를 통해서만 수행
 * @refs service/analysis, service/request
 */

package meta

// ModuleMeta 시스템 하위 모듈 정의
type ModuleMeta struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Category    string   `json:"category"`
}

// SystemMeta 대상 시스템 정의
type SystemMeta struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
	Keywords    []string     `json:"keywords"`
	IsActive    bool         `json:"is_active"`
	Modules     []ModuleMeta `json:"modules"`
}

// Systems 전체 시스템 카탈로그
var Systems = []SystemMeta{
	{
		ID: "portal", Name: "그룹웨어", Description: "결재, 메일, 일정 관리",
		Icon: "📧", Color: "#3B82F6",
		Keywords: []string{"결재", "메일", "일정", "공지", "휴가", "연차", "반차"},
		IsActive: true,
		Modules: []ModuleMeta{
			{ID: "portal-approval", Name: "결재", Description: "전자 결재", Keywords: []string{"결재", "승인", "반려"}, Category: "approval"},
			{ID: "portal-leave", Name: "휴가관리", Description: "휴가 신청/관리", Keywords: []string{"휴가", "연차", "반차", "병가"}, Category: "hr_request"},
		},
	},
	{
		ID: "one", Name: "ONE 통합부동산관리", Description: "핵심 부동산 관리 시스템",
		Icon: "🏢", Color: "#10B981",
		Keywords: []string{"부동산", "시설", "관리", "임대", "자산"},
		IsActive: true,
		Modules: []ModuleMeta{
			{ID: "one-ps", Name: "개발사업(PS)", Description: "프로젝트/개발 관리", Keywords: []string{"개발", "프로젝트", "사업"}, Category: "general"},
			{ID: "one-pm", Name: "자산운영(PM)", Description: "자산/임대 관리", Keywords: []string{"임대", "공실", "계약", "입주", "자산"}, Category: "facility_management"},
			{ID: "one-fm", Name: "FM관리", Description: "시설 유지보수", Keywords: []string{"시설", "점검", "수리", "누수", "고장", "긴급"}, Category: "facility_emergency"},
			{ID: "one-fi", Name: "전표/예산(FI)", Description: "재무/회계", Keywords: []string{"전표", "예산", "회계"}, Category: "finance"},
			{ID: "one-bi", Name: "경영정보(BI)", Description: "리포트/대시보드", Keywords: []string{"리포트", "대시보드", "통계"}, Category: "general"},
			{ID: "one-sm", Name: "공통/업무결재(SM)", Description: "결재/워크플로우", Keywords: []string{"결재", "승인"}, Category: "approval"},
			{ID: "one-vc", Name: "VOC", Description: "고객 의견 관리", Keywords: []string{"VOC", "민원", "고객"}, Category: "general"},
			{ID: "one-gr", Name: "권한관리(GR)", Description: "사용자 권한", Keywords: []string{"권한", "사용자"}, Category: "general"},
			{ID: "one-wd", Name: "배포관리(WD)", Description: "배포/릴리즈", Keywords: []string{"배포", "릴리즈"}, Category: "general"},
		},
	},
	{
		ID: "eps", Name: "전자조달", Description: "구매/조달 시스템",
		Icon: "📦", Color: "#F59E0B",
		Keywords: []string{"구매", "조달", "발주", "입찰"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "bis", Name: "경영정보", Description: "BI/리포트 시스템",
		Icon: "📊", Color: "#8B5CF6",
		Keywords: []string{"BI", "리포트", "경영", "통계"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "lime", Name: "인재개발원", Description: "교육/학습 관리",
		Icon: "🎓", Color: "#06B6D4",
		Keywords: []string{"교육", "학습", "연수", "과정"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "kteh", Name: "회사홈페이지", Description: "대외 홈페이지",
		Icon: "🌐", Color: "#64748B",
		Keywords: []string{"홈페이지", "대외"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "remk", Name: "리마크빌홈페이지", Description: "리마크빌 브랜드 사이트",
		Icon: "🏠", Color: "#EC4899",
		Keywords: []string{"리마크빌", "브랜드"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "hms", Name: "호텔멤버십", Description: "호텔 서비스 관리",
		Icon: "🏨", Color: "#F97316",
		Keywords: []string{"호텔", "멤버십", "예약"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "erp", Name: "전사적자원관리", Description: "회계/재무 시스템",
		Icon: "💰", Color: "#22C55E",
		Keywords: []string{"ERP", "회계", "재무", "정산", "전표", "법인카드"},
		IsActive: true,
		Modules: []ModuleMeta{
			{ID: "erp-expense", Name: "경비정산", Description: "비용 정산", Keywords: []string{"정산", "경비", "법인카드", "출장비"}, Category: "finance"},
		},
	},
	{
		ID: "sios", Name: "통합관제", Description: "시설 모니터링 시스템",
		Icon: "📡", Color: "#EF4444",
		Keywords: []string{"관제", "모니터링", "CCTV", "화재", "엘리베이터"},
		IsActive: true,
		Modules: []ModuleMeta{
			{ID: "sios-alert", Name: "관제알림", Description: "이상 감지/알림", Keywords: []string{"알림", "이상", "감지", "경보"}, Category: "facility_emergency"},
		},
	},
	{
		ID: "bizl", Name: "비즈라운지", Description: "공유오피스 관리",
		Icon: "🪑", Color: "#A855F7",
		Keywords: []string{"비즈라운지", "공유오피스", "좌석"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "edms", Name: "전자문서고", Description: "문서 관리 시스템",
		Icon: "📁", Color: "#0EA5E9",
		Keywords: []string{"문서", "EDMS", "파일", "저장"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "revit", Name: "도면관리", Description: "건축 도면 관리",
		Icon: "📐", Color: "#14B8A6",
		Keywords: []string{"도면", "CAD", "설계", "Revit"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "os", Name: "윈도우&OA", Description: "IT 인프라/장비 지원",
		Icon: "💻", Color: "#6366F1",
		Keywords: []string{"PC", "컴퓨터", "프린터", "인터넷", "IT", "느려"},
		IsActive: true,
		Modules: []ModuleMeta{
			{ID: "os-it", Name: "IT지원", Description: "IT 장비 지원", Keywords: []string{"PC", "컴퓨터", "프린터", "느려", "설치"}, Category: "it_support"},
		},
	},
	{
		ID: "security", Name: "보안", Description: "보안 요청 및 관리",
		Icon: "🔒", Color: "#DC2626",
		Keywords: []string{"보안", "외장하드", "USB", "반출", "솔루션"},
		IsActive: true,
		Modules: []ModuleMeta{
			{ID: "security-hdd", Name: "외장하드반출", Description: "저장장치 반출 신청", Keywords: []string{"외장하드", "USB", "반출", "반납"}, Category: "security"},
			{ID: "security-solution", Name: "보안솔루션", Description: "보안 솔루션 문의/변경", Keywords: []string{"보안솔루션", "백신", "DLP"}, Category: "security"},
		},
	},
	{
		ID: "safety", Name: "안전보건스퀘어", Description: "안전/보건 관리",
		Icon: "⛑️", Color: "#F97316",
		Keywords: []string{"안전", "보건", "사고", "위험"},
		IsActive: true, Modules: []ModuleMeta{},
	},
	{
		ID: "legacy-gw", Name: "구)그룹웨어", Description: "레거시 그룹웨어",
		Icon: "📋", Color: "#9CA3AF",
		Keywords: []string{"구그룹웨어", "레거시"},
		IsActive: false, Modules: []ModuleMeta{},
	},
}

// GetSystemByID ID로 시스템 조회
func GetSystemByID(id string) *SystemMeta {
	for i := range Systems {
		if Systems[i].ID == id {
			return &Systems[i]
		}
	}
	return nil
}

// IsValidSystem 시스템 ID 유효성 확인
func IsValidSystem(id string) bool {
	return GetSystemByID(id) != nil
}

// ActiveSystems 활성 시스템만 반환
func ActiveSystems() []SystemMeta {
	var active []SystemMeta
	for _, s := range Systems {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active
}

// GetModuleByID 시스템 내 모듈 조회
func GetModuleByID(systemID, moduleID string) *ModuleMeta {
	system := GetSystemByID(systemID)
	if system == nil {
		return nil
	}
	for i := range system.Modules {
		if system.Modules[i].ID == moduleID {
			return &system.Modules[i]
		}
	}
	return nil
}
