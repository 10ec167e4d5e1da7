package tools

// Allowed parameter values per tool family, taken from the CDISC Library
// documentation. Version lists are advisory (they appear in tool
// descriptions so a model can self-correct) while class/domain/package
// values are enforced before any request is issued.

var sdtmigVersions = []string{"3-1-2", "3-1-3", "3-2", "3-3", "3-4", "ap-1-0", "md-1-0", "md-1-1"}

var sdtmigClasses = []string{
	"GeneralObservations", "Interventions", "Events", "Findings", "FindingsAbout",
	"SpecialPurpose", "TrialDesign", "StudyReference", "Relationship",
}

var sdtmigDatasets = []string{
	"AG", "CM", "EC", "EX", "ML", "PR", "SU", "AE", "BE", "CE", "DS", "DV", "HO", "MH",
	"BS", "CP", "DA", "DD", "EG", "FT", "GF", "IE", "IS", "LB", "MB", "MI", "MK", "MS",
	"NV", "OE", "PC", "PE", "PP", "QS", "RE", "RP", "RS", "SC", "SS", "TR", "TU", "UR",
	"VS", "FA", "SR", "CO", "DM", "SE", "SM", "SV", "TA", "TD", "TE", "TI",
}

var sdtmVersions = []string{"1-2", "1-3", "1-4", "1-5", "1-6", "1-7", "1-8", "2-0", "2-1"}

var sdtmClasses = []string{
	"GeneralObservations", "Interventions", "Events", "Findings", "FindingsAbout",
	"SpecialPurpose", "AssociatedPersons", "TrialDesign", "StudyReference", "Relationship",
}

var sdtmDatasets = []string{
	"DM", "CO", "SE", "SJ", "SV", "SM", "TE", "TA", "TX", "TT", "TP", "TV", "TD", "TM",
	"TI", "TS", "AC", "DI", "OI", "RELREC", "SUPPQUAL", "POOLDEF", "RELSUB", "RELREF",
	"DR", "APRELSUB", "RELSPEC",
}

var sendigVersions = []string{"3-0", "3-1-1", "3-1", "ar-1-0", "dart-1-1", "genetox-1-0"}

var sendigClasses = []string{
	"GeneralObservations", "SpecialPurpose", "Interventions", "Events", "Findings",
	"TrialDesign", "Relationship",
}

var sendigDatasets = []string{
	"DM", "CO", "SE", "EX", "DS", "BW", "BG", "CL", "DD", "FW", "LB", "MA", "MI", "OM",
	"PM", "PC", "PP", "SC", "TF", "VS", "EG", "CV", "RE", "TE", "TA", "TX", "TS",
	"RELREC", "SUPPQUAL", "POOLDEF",
}

var cdashigVersions = []string{"1-1-1", "2-0", "2-1", "2-2", "2-3"}

var cdashigClasses = []string{
	"Interventions", "Events", "Findings", "FindingsAbout", "SpecialPurpose",
}

var cdashigDomains = []string{
	"AG", "CM", "EC", "EX", "ML", "PR", "SU", "AE", "CE", "DS", "DV", "HO", "MH", "SA",
	"CP", "CV", "DA", "DD", "EG", "GF", "IE", "LB", "MB", "MI", "MK", "MS", "NV", "OE",
	"PC", "PE", "RE", "RP", "RS", "SC", "TR", "TU", "UR", "VS", "FA", "SR", "CO", "DM",
}

var cdashVersions = []string{"1-0", "1-1", "1-2", "1-3"}

var cdashClasses = []string{
	"Interventions", "Events", "Findings", "FindingsAbout", "SpecialPurpose",
	"Identifiers", "AssociatedPersonsIdentifiers", "Timing",
}

var cdashDomains = []string{"AE", "CO", "DM", "DS", "MH", "MS"}

var adamProducts = []string{
	"adam-2-1", "adam-adae-1-0", "adam-md-1-0", "adam-nca-1-0", "adam-occds-1-0",
	"adam-occds-1-1", "adam-poppk-1-0", "adam-tte-1-0", "adamig-1-0", "adamig-1-1",
	"adamig-1-2", "adamig-1-3",
}

// adamDatastructures maps each ADaM product to the data structures it
// defines. Only these pairs exist upstream.
var adamDatastructures = map[string][]string{
	"adam-nca-1-0":   {"ADNCA"},
	"adamig-1-0":     {"ADSL", "BDS"},
	"adamig-1-1":     {"ADSL", "BDS"},
	"adam-occds-1-0": {"OCCDS"},
	"adam-occds-1-1": {"OCCDS", "AE"},
	"adam-adae-1-0":  {"ADAE"},
	"adam-poppk-1-0": {"ADPPK"},
	"adam-tte-1-0":   {"ADTTE"},
	"adamig-1-2":     {"ADSL", "BDS"},
	"adam-md-1-0":    {"ADDL", "MDOCCDS", "MDBDS", "MDTTE"},
	"adamig-1-3":     {"ADSL", "BDS", "TTE"},
}

// qrsVersions maps each published QRS instrument to its available versions.
var qrsVersions = map[string][]string{
	"AIMS01": {"2-0"},
	"APCH1":  {"1-0"},
	"ATLAS1": {"1-0"},
	"CGI02":  {"2-1"},
	"HAMA1":  {"2-1"},
	"KFSS1":  {"2-0"},
	"KPSS1":  {"2-0"},
	"PGI01":  {"1-1"},
	"SIXMW1": {"1-0"},
}

// ctPackages lists every published Controlled Terminology package id.
var ctPackages = []string{
	"adamct-2014-09-26", "adamct-2015-12-18", "adamct-2016-03-25", "adamct-2016-09-30",
	"adamct-2016-12-16", "adamct-2017-03-31", "adamct-2017-09-29", "adamct-2018-12-21",
	"adamct-2019-03-29", "adamct-2019-12-20", "adamct-2020-03-27", "adamct-2020-06-26",
	"adamct-2020-11-06", "adamct-2021-12-17", "adamct-2022-06-24", "adamct-2023-03-31",
	"adamct-2023-06-30", "adamct-2024-03-29", "adamct-2024-09-27", "adamct-2025-03-28",
	"adamct-2025-09-26",
	"cdashct-2014-09-26", "cdashct-2015-03-27", "cdashct-2016-03-25", "cdashct-2016-09-30",
	"cdashct-2016-12-16", "cdashct-2017-09-29", "cdashct-2018-03-30", "cdashct-2018-06-29",
	"cdashct-2018-09-28", "cdashct-2018-12-21", "cdashct-2019-03-29", "cdashct-2019-06-28",
	"cdashct-2019-12-20", "cdashct-2020-11-06", "cdashct-2020-12-18", "cdashct-2021-03-26",
	"cdashct-2021-06-25", "cdashct-2021-09-24", "cdashct-2021-12-17", "cdashct-2022-06-24",
	"cdashct-2022-09-30", "cdashct-2022-12-16", "cdashct-2024-09-27", "cdashct-2025-03-28",
	"coact-2014-12-19", "coact-2015-03-27",
	"ddfct-2022-09-30", "ddfct-2022-12-16", "ddfct-2023-03-31", "ddfct-2023-06-30",
	"ddfct-2023-09-29", "ddfct-2023-12-15", "ddfct-2024-03-29", "ddfct-2024-09-27",
	"ddfct-2025-09-26",
	"define-xmlct-2019-12-20", "define-xmlct-2020-03-27", "define-xmlct-2020-06-26",
	"define-xmlct-2020-11-06", "define-xmlct-2020-12-18", "define-xmlct-2021-03-26",
	"define-xmlct-2021-06-25", "define-xmlct-2021-09-24", "define-xmlct-2021-12-17",
	"define-xmlct-2022-09-30", "define-xmlct-2022-12-16", "define-xmlct-2023-06-30",
	"define-xmlct-2023-12-15", "define-xmlct-2024-03-29", "define-xmlct-2024-09-27",
	"define-xmlct-2025-03-28", "define-xmlct-2025-09-26",
	"glossaryct-2020-12-18", "glossaryct-2021-12-17", "glossaryct-2022-12-16",
	"glossaryct-2023-12-15", "glossaryct-2024-09-27", "glossaryct-2025-09-26",
	"mrctct-2024-03-29", "mrctct-2024-09-27", "mrctct-2025-09-26",
	"protocolct-2017-03-31", "protocolct-2017-06-30", "protocolct-2017-09-29",
	"protocolct-2018-03-30", "protocolct-2018-06-29", "protocolct-2018-09-28",
	"protocolct-2019-03-29", "protocolct-2019-06-28", "protocolct-2019-09-27",
	"protocolct-2019-12-20", "protocolct-2020-03-27", "protocolct-2020-06-26",
	"protocolct-2020-11-06", "protocolct-2020-12-18", "protocolct-2021-03-26",
	"protocolct-2021-06-25", "protocolct-2021-09-24", "protocolct-2021-12-17",
	"protocolct-2022-03-25", "protocolct-2022-06-24", "protocolct-2022-09-30",
	"protocolct-2022-12-16", "protocolct-2023-03-31", "protocolct-2023-06-30",
	"protocolct-2023-09-29", "protocolct-2023-12-15", "protocolct-2024-03-29",
	"protocolct-2024-09-27", "protocolct-2025-03-28", "protocolct-2025-09-26",
	"qrsct-2015-06-26", "qrsct-2015-09-25", "qs-ftct-2014-09-26",
	"sdtmct-2014-09-26", "sdtmct-2014-12-19", "sdtmct-2015-03-27", "sdtmct-2015-06-26",
	"sdtmct-2015-09-25", "sdtmct-2015-12-18", "sdtmct-2016-03-25", "sdtmct-2016-06-24",
	"sdtmct-2016-09-30", "sdtmct-2016-12-16", "sdtmct-2017-03-31", "sdtmct-2017-06-30",
	"sdtmct-2017-09-29", "sdtmct-2017-12-22", "sdtmct-2018-03-30", "sdtmct-2018-06-29",
	"sdtmct-2018-09-28", "sdtmct-2018-12-21", "sdtmct-2019-03-29", "sdtmct-2019-06-28",
	"sdtmct-2019-09-27", "sdtmct-2019-12-20", "sdtmct-2020-03-27", "sdtmct-2020-06-26",
	"sdtmct-2020-11-06", "sdtmct-2020-12-18", "sdtmct-2021-03-26", "sdtmct-2021-06-25",
	"sdtmct-2021-09-24", "sdtmct-2021-12-17", "sdtmct-2022-03-25", "sdtmct-2022-06-24",
	"sdtmct-2022-09-30", "sdtmct-2022-12-16", "sdtmct-2023-03-31", "sdtmct-2023-06-30",
	"sdtmct-2023-09-29", "sdtmct-2023-12-15", "sdtmct-2024-03-29", "sdtmct-2024-09-27",
	"sdtmct-2025-03-28", "sdtmct-2025-09-26",
	"sendct-2014-09-26", "sendct-2014-12-19", "sendct-2015-03-27", "sendct-2015-06-26",
	"sendct-2015-09-25", "sendct-2015-12-18", "sendct-2016-03-25", "sendct-2016-06-24",
	"sendct-2016-09-30", "sendct-2016-12-16", "sendct-2017-03-31", "sendct-2017-06-30",
	"sendct-2017-09-29", "sendct-2017-12-22", "sendct-2018-03-30", "sendct-2018-06-29",
	"sendct-2018-09-28", "sendct-2018-12-21", "sendct-2019-03-29", "sendct-2019-06-28",
	"sendct-2019-09-27", "sendct-2019-12-20", "sendct-2020-03-27", "sendct-2020-06-26",
	"sendct-2020-11-06", "sendct-2020-12-18", "sendct-2021-03-26", "sendct-2021-06-25",
	"sendct-2021-09-24", "sendct-2021-12-17", "sendct-2022-03-25", "sendct-2022-06-24",
	"sendct-2022-09-30", "sendct-2022-12-16", "sendct-2023-03-31", "sendct-2023-06-30",
	"sendct-2023-09-29", "sendct-2023-12-15", "sendct-2024-03-29", "sendct-2024-09-27",
	"sendct-2025-03-28", "sendct-2025-09-26",
	"tmfct-2024-09-27",
}
