/*
 * @module service/analysis/corpus
 * @description 분석기 키워드 말뭉치 정의, 시스템/모듈/유형 키워드와 연관관계·처리시간 기준표 포함
 * @architecture 계층형 아키텍처 - 비즈니스 서비스 계층
 * @documentReference ai_docs/analysis.md
 * @stateFlow 없음
 * @rules 말뭉치는 순서가 있는 슬라이스로 유지한다, 순회 순서가 동점 처리 결과를 결정한다
 * @dependencies request-portal-service/service/meta
 * @refs service/analysis/analyzer.go
 */

package analysis

import (
	"regexp"

	"request-portal-service/service/meta"
)

// keywordEntry 키워드 말뭉치 항목
type keywordEntry struct {
	ID       string
	Name     string
	Keywords []string
}

// categoryEntry 요청 유형 말뭉치 항목
type categoryEntry struct {
	Category meta.RequestCategory
	Label    string
	Keywords []string
}

// systemCorpus 시스템 감지용 키워드
var systemCorpus = []keywordEntry{
	{
		ID:   "one",
		Name: "ONE 통합부동산관리",
		Keywords: []string{
			"ONE", "부동산", "임대", "FM", "PM", "시설", "자산", "건물",
			"임대료", "정산", "공실", "관리비", "계약", "입주", "퇴거",
			"유지보수", "보일러", "에어컨", "누수", "고장", "수리",
		},
	},
	{
		ID:   "portal",
		Name: "그룹웨어 Portal",
		Keywords: []string{
			"그룹웨어", "포탈", "Portal", "휴가", "연차", "반차", "병가",
			"결재", "메일", "일정", "근태", "출퇴근", "전자결재",
		},
	},
	{
		ID:   "erp",
		Name: "전사적자원관리 ERP",
		Keywords: []string{
			"ERP", "전표", "예산", "정산", "법인카드", "경비", "회계",
			"비용", "지출", "영수증", "출장비", "식대", "교통비", "재무",
		},
	},
	{
		ID:   "os",
		Name: "윈도우&OA",
		Keywords: []string{
			"PC", "컴퓨터", "IT", "프린터", "네트워크", "설치", "윈도우",
			"OA", "노트북", "소프트웨어", "계정", "비밀번호", "느려", "느림",
			"인터넷", "와이파이", "WiFi",
		},
	},
	{
		ID:   "security",
		Name: "보안",
		Keywords: []string{
			"보안", "외장하드", "USB", "반출", "반입", "저장장치", "SSD",
			"데이터", "보안솔루션", "승인",
		},
	},
	{
		ID:   "sios",
		Name: "통합관제 SIOS",
		Keywords: []string{
			"관제", "CCTV", "센서", "모니터링", "화재감지", "침입", "전력",
			"엘리베이터", "경보", "알림", "이상",
		},
	},
	{
		ID:       "eps",
		Name:     "전자조달 EPS",
		Keywords: []string{"조달", "구매", "발주", "입찰", "계약", "납품"},
	},
	{
		ID:       "bis",
		Name:     "경영정보 BIS",
		Keywords: []string{"BI", "리포트", "대시보드", "분석", "경영", "통계"},
	},
}

// oneModuleCorpus ONE 시스템 모듈 키워드
var oneModuleCorpus = []keywordEntry{
	{
		ID:   "one-fm",
		Name: "FM관리",
		Keywords: []string{
			"FM", "시설", "유지보수", "누수", "고장", "수리", "점검",
			"에어컨", "보일러", "전등", "청소", "긴급",
		},
	},
	{
		ID:   "one-pm",
		Name: "자산운영",
		Keywords: []string{
			"PM", "자산", "임대", "공실", "계약", "입주", "퇴거",
			"임대료", "관리비", "면적",
		},
	},
	{
		ID:       "one-fi",
		Name:     "전표/예산",
		Keywords: []string{"전표", "예산", "정산", "부가세", "회계", "비용"},
	},
	{
		ID:       "one-ps",
		Name:     "개발사업",
		Keywords: []string{"개발", "프로젝트", "사업", "착공", "준공"},
	},
	{
		ID:       "one-bi",
		Name:     "경영정보",
		Keywords: []string{"BI", "리포트", "현황", "통계", "분석"},
	},
	{
		ID:       "one-sm",
		Name:     "공통/업무결재",
		Keywords: []string{"결재", "승인", "워크플로우", "공통"},
	},
	{
		ID:       "one-vc",
		Name:     "VOC",
		Keywords: []string{"VOC", "민원", "고객", "의견", "불만"},
	},
}

// categoryCorpus 요청 유형 키워드
var categoryCorpus = []categoryEntry{
	{
		Category: meta.CategoryBugFix,
		Label:    "오류 수정",
		Keywords: []string{
			"오류", "버그", "틀려", "틀림", "안됨", "안돼", "에러", "문제",
			"수정", "잘못", "이상", "오작동", "맞지 않",
		},
	},
	{
		Category: meta.CategoryFeatureRequest,
		Label:    "기능 요청",
		Keywords: []string{
			"기능", "추가", "개선", "새로운", "했으면", "되면", "좋겠",
			"변경", "수정 요청", "업그레이드",
		},
	},
	{
		Category: meta.CategoryInquiry,
		Label:    "문의",
		Keywords: []string{
			"문의", "어떻게", "방법", "확인", "조회", "알고 싶", "궁금",
			"질문", "알려",
		},
	},
	{
		Category: meta.CategoryEmergency,
		Label:    "긴급",
		Keywords: []string{
			"긴급", "누수", "화재", "정전", "당장", "급해", "지금", "바로",
			"위험", "사고", "응급", "비상",
		},
	},
	{
		Category: meta.CategoryMaintenance,
		Label:    "점검/유지보수",
		Keywords: []string{
			"점검", "유지보수", "청소", "교체", "정비", "관리", "수리",
			"보수", "정기",
		},
	},
	{
		Category: meta.CategoryApproval,
		Label:    "승인 요청",
		Keywords: []string{"승인", "신청", "요청", "허가", "결재", "반출"},
	},
	{
		Category: meta.CategoryGeneral,
		Label:    "일반",
		Keywords: []string{},
	},
}

// locationNouns 위치 제안 추출용 장소 명사, 먼저 매칭된 것 하나만 사용
var locationNouns = []string{"화장실", "사무실", "회의실", "로비", "주차장", "복도", "엘리베이터"}

var (
	floorPattern           = regexp.MustCompile(`(\d+)층`)
	urgencyCriticalPattern = regexp.MustCompile(`긴급|급해|당장|지금|바로|위험|사고`)
	urgencyHighPattern     = regexp.MustCompile(`(?i)빨리|가능한 빨리|ASAP`)
)

// 제목 생성 시 제거하는 상투어 패턴
var (
	titleStripSystem  = regexp.MustCompile(`(?i)ONE 시스템|ONE|시스템`)
	titleStripRelated = regexp.MustCompile(`쪽에서|관련해서|관련`)
	titleStripWhen    = regexp.MustCompile(`할 때|할때`)
	titleStripRequest = regexp.MustCompile(`요청|신청|문의`)
)

// dependencyEntry 시스템 간 연관관계 정의, 영향도 분석에 사용
type dependencyEntry struct {
	SystemID    string
	Related     []string
	Description string
}

var systemDependencies = []dependencyEntry{
	{
		SystemID:    "one",
		Related:     []string{"sios", "erp", "portal"},
		Description: "ONE 시스템은 관제(SIOS), ERP, 그룹웨어와 연동됩니다",
	},
	{
		SystemID:    "portal",
		Related:     []string{"erp", "security"},
		Description: "Portal은 ERP 결재 및 보안 시스템과 연동됩니다",
	},
	{
		SystemID:    "erp",
		Related:     []string{"portal", "one"},
		Description: "ERP는 그룹웨어 결재 및 ONE 정산과 연동됩니다",
	},
	{
		SystemID:    "security",
		Related:     []string{"portal", "sios"},
		Description: "보안 시스템은 그룹웨어 승인 및 관제와 연동됩니다",
	},
	{
		SystemID:    "sios",
		Related:     []string{"one", "security"},
		Description: "관제 시스템은 ONE FM관리 및 보안과 연동됩니다",
	},
	{
		SystemID:    "os",
		Related:     []string{"security", "portal"},
		Description: "IT 시스템은 보안 및 그룹웨어 계정과 연동됩니다",
	},
}

// timeEntry 요청 유형별 예상 처리 시간 기준
type timeEntry struct {
	Min string
	Max string
	Avg string
}

var processingTimeTable = map[meta.RequestCategory]timeEntry{
	meta.CategoryEmergency:      {Min: "30분", Max: "2시간", Avg: "약 1시간"},
	meta.CategoryBugFix:         {Min: "1일", Max: "5일", Avg: "약 2-3일"},
	meta.CategoryFeatureRequest: {Min: "1주", Max: "1개월", Avg: "약 2주"},
	meta.CategoryInquiry:        {Min: "1시간", Max: "1일", Avg: "약 4시간"},
	meta.CategoryMaintenance:    {Min: "2시간", Max: "1일", Avg: "약 4시간"},
	meta.CategoryApproval:       {Min: "1시간", Max: "3일", Avg: "약 1일"},
	meta.CategoryGeneral:        {Min: "1일", Max: "1주", Avg: "약 3일"},
}

// urgencyTimeMultiplier 긴급도별 처리 시간 가중치
var urgencyTimeMultiplier = map[meta.Urgency]float64{
	meta.UrgencyCritical: 0.3,
	meta.UrgencyHigh:     0.6,
	meta.UrgencyNormal:   1.0,
	meta.UrgencyLow:      1.5,
}

func systemCorpusEntry(systemID string) *keywordEntry {
	for i := range systemCorpus {
		if systemCorpus[i].ID == systemID {
			return &systemCorpus[i]
		}
	}
	return nil
}
